package domain

import (
	"strings"
	"unicode"
)

// ContentType selects a template in the content studio.
type ContentType string

const (
	ContentTypeCaption       ContentType = "caption"
	ContentTypeTweet         ContentType = "tweet"
	ContentTypeYouTubeScript ContentType = "youtube-script"
	ContentTypeBlogSnippet   ContentType = "blog-snippet"
)

// ContentTypes lists every template, in the order the studio offers them.
var ContentTypes = []ContentType{
	ContentTypeCaption,
	ContentTypeTweet,
	ContentTypeYouTubeScript,
	ContentTypeBlogSnippet,
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeCaption, ContentTypeTweet, ContentTypeYouTubeScript, ContentTypeBlogSnippet:
		return true
	default:
		return false
	}
}

// Tones and Lengths are the options the studio form offers. Neither is
// enforced.
var (
	Tones   = []string{"professional", "casual", "funny", "educational", "inspirational"}
	Lengths = []string{"short", "medium", "long"}
)

// FallbackContent is rendered for a content type with no template.
const FallbackContent = "Generated content will appear here..."

// GenerateRequest is a content studio submission.
type GenerateRequest struct {
	ContentType string
	Topic       string
	Tone        string
	Length      string
}

// Validate requires a content type and a topic.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.ContentType) == "" || strings.TrimSpace(r.Topic) == "" {
		return ErrMissingInput
	}
	return nil
}

// RenderContent fills the template for t with topic and tone.
func RenderContent(t ContentType, topic, tone string) string {
	switch t {
	case ContentTypeCaption:
		return "🚀 Just discovered something amazing about " + topic + "! Here's what you need to know:\n\n" +
			"✨ Key insight that will blow your mind\n" +
			"💡 Pro tip that changed everything for me\n" +
			"🔥 Why this matters for your " + tone + " journey\n\n" +
			"What are your thoughts? Drop a comment below! 👇\n\n" +
			"#" + hashtag(topic) + " #ContentCreator #Tips"
	case ContentTypeTweet:
		return "🧵 Thread about " + topic + "\n\n" +
			"1/ Here's something " + tone + " that most people don't realize about " + topic + "...\n\n" +
			"2/ The key insight that changed my perspective:\n\n" +
			"3/ Here's how you can apply this today:\n\n" +
			"4/ Bottom line: " + topic + " is more important than you think. What's your experience?"
	case ContentTypeYouTubeScript:
		return "[INTRO]\nHey everyone! Welcome back to my channel. Today we're diving deep into " + topic +
			", and I promise this " + tone + " approach will completely change how you think about it.\n\n" +
			"[HOOK]\nBut first, let me ask you this...\n\n" +
			"[MAIN CONTENT]\nSo here's what most people get wrong about " + topic + "...\n\n" +
			"[CONCLUSION]\nThat's a wrap! If this " + tone + " breakdown helped you understand " + topic +
			" better, smash that like button and subscribe for more content like this!"
	case ContentTypeBlogSnippet:
		return "# The Ultimate Guide to " + topic + ": A " + tone + " Approach\n\n" +
			"When it comes to " + topic + ", most people are completely missing the point. " +
			"After years of research and hands-on experience, I've discovered that the " + tone +
			" approach yields the best results.\n\n" +
			"## Why " + topic + " Matters More Than Ever\n\n" +
			"In today's fast-paced world, understanding " + topic + " isn't just helpful—it's essential. " +
			"Here's what you need to know...\n\n" +
			"## The Game-Changing Strategy\n\n" +
			"This " + tone + " method has helped thousands of people transform their approach to " + topic +
			". Here's exactly how it works..."
	default:
		return FallbackContent
	}
}

// hashtag strips whitespace so a topic can be used as a tag.
func hashtag(topic string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, topic)
}

// StudioState is the last successful generation of a session.
type StudioState struct {
	ContentType ContentType
	Topic       string
	Tone        string
	Length      string
	Content     string
}
