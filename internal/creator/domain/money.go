package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or it fails to parse.
var DefaultLocale = language.AmericanEnglish

// ParseLocale resolves a BCP 47 tag, falling back to DefaultLocale.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	return tag
}

// FormatAmount renders amount as a dollar figure with locale digit grouping,
// e.g. "$1,500.00" or "-$40.00". Digits come straight from the decimal so
// large amounts stay exact.
func FormatAmount(tag language.Tag, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	group, point := separators(tag)

	s := "$" + groupDigits(whole, group) + point + cents
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// separators asks the locale's number printer for its grouping and decimal
// marks. Locales with non-latin digits fall back to "," and ".".
func separators(tag language.Tag) (group, point string) {
	p := message.NewPrinter(tag)

	group = ","
	if thousand := p.Sprintf("%d", 1000); strings.HasPrefix(thousand, "1") && strings.HasSuffix(thousand, "000") {
		group = thousand[1 : len(thousand)-3]
	}

	point = "."
	if half := p.Sprintf("%.1f", 0.5); strings.HasPrefix(half, "0") && strings.HasSuffix(half, "5") && len(half) > 2 {
		point = half[1 : len(half)-1]
	}
	return group, point
}

// groupDigits inserts sep between every three digits from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormattedTotals are Totals ready for display.
type FormattedTotals struct {
	Income   string
	Expenses string
	Net      string
}

// Format renders every figure of t with FormatAmount.
func (t Totals) Format(tag language.Tag) FormattedTotals {
	return FormattedTotals{
		Income:   FormatAmount(tag, t.Income),
		Expenses: FormatAmount(tag, t.Expenses),
		Net:      FormatAmount(tag, t.Net),
	}
}
