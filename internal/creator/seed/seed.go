// Package seed loads the invites and ledger entries a new workspace starts
// with. The embedded default can be replaced by a YAML file on disk.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

type file struct {
	Invites []invite `yaml:"invites"`
	Entries []entry  `yaml:"entries"`
}

type invite struct {
	ID           string   `yaml:"id"`
	BrandName    string   `yaml:"brand_name"`
	Description  string   `yaml:"description"`
	Offer        string   `yaml:"offer"`
	Deadline     string   `yaml:"deadline"`
	Requirements []string `yaml:"requirements"`
	Platform     string   `yaml:"platform"`
	Status       string   `yaml:"status"`
}

type entry struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Amount      string `yaml:"amount"`
	Source      string `yaml:"source"`
	Date        string `yaml:"date"`
	Tag         string `yaml:"tag"`
	Description string `yaml:"description"`
}

// Default returns the embedded seed.
func Default() (domain.Seed, error) {
	return Parse(defaultSeed)
}

// Load reads the seed at path, or the embedded default when path is empty.
func Load(path string) (domain.Seed, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML seed document.
func Parse(data []byte) (domain.Seed, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Seed{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	out := domain.Seed{
		Invites: make([]domain.BrandInvite, 0, len(f.Invites)),
		Entries: make([]domain.FinanceEntry, 0, len(f.Entries)),
	}

	seen := make(map[string]struct{}, len(f.Invites))
	for i, raw := range f.Invites {
		offer, err := decimal.NewFromString(raw.Offer)
		if err != nil {
			return domain.Seed{}, fmt.Errorf("seed invite %d: offer %q: %w", i, raw.Offer, domain.ErrValidation)
		}

		inv := domain.BrandInvite{
			ID:           raw.ID,
			BrandName:    raw.BrandName,
			Description:  raw.Description,
			Offer:        offer,
			Deadline:     raw.Deadline,
			Requirements: raw.Requirements,
			Platform:     domain.Platform(raw.Platform),
			Status:       domain.InviteStatus(raw.Status),
		}
		if err := inv.Validate(); err != nil {
			return domain.Seed{}, fmt.Errorf("seed invite %d: %w", i, err)
		}
		if _, dup := seen[inv.ID]; dup {
			return domain.Seed{}, fmt.Errorf("seed invite %d: duplicate id %q", i, inv.ID)
		}
		seen[inv.ID] = struct{}{}
		out.Invites = append(out.Invites, inv)
	}

	clear(seen)
	for i, raw := range f.Entries {
		e, err := domain.NewFinanceEntry(raw.ID, domain.FinanceEntryInput{
			Type:        raw.Type,
			Amount:      raw.Amount,
			Source:      raw.Source,
			Date:        raw.Date,
			Tag:         raw.Tag,
			Description: raw.Description,
		})
		if err != nil {
			return domain.Seed{}, fmt.Errorf("seed entry %d: %w", i, err)
		}
		if e.ID == "" {
			return domain.Seed{}, fmt.Errorf("seed entry %d: missing id", i)
		}
		if _, dup := seen[e.ID]; dup {
			return domain.Seed{}, fmt.Errorf("seed entry %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = struct{}{}
		out.Entries = append(out.Entries, e)
	}

	return out, nil
}
