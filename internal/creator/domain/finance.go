package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for deadlines, entry dates and
// draft creation dates.
const DateLayout = time.DateOnly

// EntryType separates money in from money out.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// FinanceTags are the tags offered by the entry form. Entries may carry any
// non-empty tag.
var FinanceTags = []string{
	"Brand Collaboration",
	"Ad Revenue",
	"Sponsorship",
	"Equipment",
	"Software",
	"Marketing",
	"Other",
}

// FinanceEntry is a single income or expense record. Entries are immutable.
type FinanceEntry struct {
	ID          string
	Type        EntryType
	Amount      decimal.Decimal
	Source      string
	Date        string // YYYY-MM-DD
	Tag         string
	Description string
}

// FinanceEntryInput is the raw form submission. Amount stays a string until
// validated so a malformed number is reported instead of propagating.
type FinanceEntryInput struct {
	Type        string
	Amount      string
	Source      string
	Date        string
	Tag         string
	Description string
}

// NewFinanceEntry validates input and builds an entry with the given id.
func NewFinanceEntry(id string, in FinanceEntryInput) (FinanceEntry, error) {
	typ := EntryType(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return FinanceEntry{}, invalid("type", "must be income or expense")
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return FinanceEntry{}, err
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		return FinanceEntry{}, invalid("source", "required")
	}

	date := strings.TrimSpace(in.Date)
	if err := validateDate("date", date); err != nil {
		return FinanceEntry{}, err
	}

	tag := strings.TrimSpace(in.Tag)
	if tag == "" {
		return FinanceEntry{}, invalid("tag", "required")
	}

	return FinanceEntry{
		ID:          id,
		Type:        typ,
		Amount:      amount,
		Source:      source,
		Date:        date,
		Tag:         tag,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// ParseAmount parses a non-negative decimal currency amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, invalid("amount", "required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid("amount", "not a number")
	}
	if d.IsNegative() {
		return decimal.Zero, invalid("amount", "must not be negative")
	}
	return d, nil
}

// AddFinanceEntry prepends entry and returns the new collection.
func AddFinanceEntry(entries []FinanceEntry, entry FinanceEntry) []FinanceEntry {
	out := make([]FinanceEntry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// Totals are the ledger aggregates.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// ComputeTotals sums the whole collection. Nothing is cached; decimal
// addition is exact so the result does not depend on entry order.
func ComputeTotals(entries []FinanceEntry) Totals {
	income, expenses := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case EntryTypeIncome:
			income = income.Add(e.Amount)
		case EntryTypeExpense:
			expenses = expenses.Add(e.Amount)
		}
	}
	return Totals{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

func validateDate(field, value string) error {
	if value == "" {
		return invalid(field, "required")
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return invalid(field, "must be a YYYY-MM-DD date")
	}
	return nil
}
