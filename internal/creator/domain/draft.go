package domain

import (
	"strings"
	"time"
)

// ContentDraft is a saved piece of generated text. Drafts are immutable.
type ContentDraft struct {
	ID        string
	Type      ContentType
	Title     string
	Content   string
	CreatedAt string // YYYY-MM-DD
}

// ContentDraftInput is what a caller submits when saving a draft.
type ContentDraftInput struct {
	Type    string
	Title   string
	Content string
}

// NewContentDraft validates input and stamps the draft with now's date.
func NewContentDraft(id string, in ContentDraftInput, now time.Time) (ContentDraft, error) {
	typ := ContentType(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return ContentDraft{}, invalid("type", "must be one of caption, tweet, youtube-script, blog-snippet")
	}
	if strings.TrimSpace(in.Content) == "" {
		return ContentDraft{}, invalid("content", "required")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = string(typ) + " draft"
	}

	return ContentDraft{
		ID:        id,
		Type:      typ,
		Title:     title,
		Content:   in.Content,
		CreatedAt: now.Format(DateLayout),
	}, nil
}

// DraftFromStudio turns the last generated text into a draft input titled
// "<type> about <topic>".
func DraftFromStudio(s StudioState) (ContentDraftInput, error) {
	if s.Content == "" {
		return ContentDraftInput{}, ErrNothingGenerated
	}
	return ContentDraftInput{
		Type:    string(s.ContentType),
		Title:   string(s.ContentType) + " about " + s.Topic,
		Content: s.Content,
	}, nil
}

// SaveDraft prepends draft and returns the new collection.
func SaveDraft(drafts []ContentDraft, draft ContentDraft) []ContentDraft {
	out := make([]ContentDraft, 0, len(drafts)+1)
	out = append(out, draft)
	return append(out, drafts...)
}
