package http

import (
	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func toInvite(inv domain.BrandInvite) creatorsdk.Invite {
	next := domain.AllowedTransitions(inv.Status)
	nextStatuses := make([]string, len(next))
	for i, s := range next {
		nextStatuses[i] = string(s)
	}

	requirements := inv.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	return creatorsdk.Invite{
		ID:           inv.ID,
		BrandName:    inv.BrandName,
		Description:  inv.Description,
		Offer:        money(inv.Offer),
		Deadline:     inv.Deadline,
		Requirements: requirements,
		Platform:     string(inv.Platform),
		Status:       string(inv.Status),
		NextStatuses: nextStatuses,
	}
}

func toInvitesResponse(invites []domain.BrandInvite) creatorsdk.ListInvitesResponse {
	out := creatorsdk.ListInvitesResponse{
		Invites:      make([]creatorsdk.Invite, len(invites)),
		PendingCount: domain.PendingCount(invites),
	}
	for i, inv := range invites {
		out.Invites[i] = toInvite(inv)
	}
	return out
}

func toTotals(t domain.Totals) creatorsdk.Totals {
	return creatorsdk.Totals{
		TotalIncome:   money(t.Income),
		TotalExpenses: money(t.Expenses),
		NetProfit:     money(t.Net),
	}
}

func toEntriesResponse(entries []domain.FinanceEntry) creatorsdk.FinanceEntriesResponse {
	out := creatorsdk.FinanceEntriesResponse{
		Entries: make([]creatorsdk.FinanceEntry, len(entries)),
		Totals:  toTotals(domain.ComputeTotals(entries)),
	}
	for i, e := range entries {
		out.Entries[i] = creatorsdk.FinanceEntry{
			ID:          e.ID,
			Type:        string(e.Type),
			Amount:      money(e.Amount),
			Source:      e.Source,
			Date:        e.Date,
			Tag:         e.Tag,
			Description: e.Description,
		}
	}
	return out
}

func toSummaryResponse(s service.Summary) creatorsdk.FinanceSummaryResponse {
	return creatorsdk.FinanceSummaryResponse{
		Totals: toTotals(s.Totals),
		Formatted: creatorsdk.Totals{
			TotalIncome:   s.Formatted.Income,
			TotalExpenses: s.Formatted.Expenses,
			NetProfit:     s.Formatted.Net,
		},
		EntryCount: s.Entries,
		Tags:       domain.FinanceTags,
	}
}

func toGenerated(s domain.StudioState) creatorsdk.GeneratedContent {
	return creatorsdk.GeneratedContent{
		ContentType: string(s.ContentType),
		Topic:       s.Topic,
		Tone:        s.Tone,
		Length:      s.Length,
		Content:     s.Content,
	}
}

func toDraftsResponse(drafts []domain.ContentDraft) creatorsdk.DraftsResponse {
	out := creatorsdk.DraftsResponse{Drafts: make([]creatorsdk.ContentDraft, len(drafts))}
	for i, d := range drafts {
		out.Drafts[i] = creatorsdk.ContentDraft{
			ID:        d.ID,
			Type:      string(d.Type),
			Title:     d.Title,
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
		}
	}
	return out
}
