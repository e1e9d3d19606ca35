package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s, err := Default()
	require.NoError(t, err)

	require.Len(t, s.Invites, 3)
	require.Equal(t, "TechGear Pro", s.Invites[0].BrandName)
	require.Equal(t, "StyleCo Fashion", s.Invites[2].BrandName)
	require.Equal(t, domain.InviteStatusAccepted, s.Invites[2].Status)
	require.Equal(t, []string{"3 Instagram posts", "Include discount code"}, s.Invites[1].Requirements)
	require.Equal(t, 2, domain.PendingCount(s.Invites))

	require.Len(t, s.Entries, 3)
	totals := domain.ComputeTotals(s.Entries)
	require.True(t, totals.Income.Equal(decimal.NewFromInt(2300)))
	require.True(t, totals.Expenses.Equal(decimal.NewFromInt(200)))
	require.True(t, totals.Net.Equal(decimal.NewFromInt(2100)))
	require.Empty(t, s.Entries[1].Description)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses the default", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		require.Len(t, s.Invites, 3)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		doc := `
invites:
  - id: a
    brand_name: Acme
    offer: "99.50"
    deadline: "2025-03-01"
    platform: twitter
    status: ongoing
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		s, err := Load(path)
		require.NoError(t, err)
		require.Len(t, s.Invites, 1)
		require.Empty(t, s.Entries)
		require.Equal(t, "99.5", s.Invites[0].Offer.String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestParseRejectsBadData(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bad offer": `
invites:
  - {id: a, brand_name: A, offer: lots, deadline: "2025-01-01", platform: youtube, status: pending}
`,
		"bad platform": `
invites:
  - {id: a, brand_name: A, offer: "1", deadline: "2025-01-01", platform: myspace, status: pending}
`,
		"duplicate invite": `
invites:
  - {id: a, brand_name: A, offer: "1", deadline: "2025-01-01", platform: youtube, status: pending}
  - {id: a, brand_name: B, offer: "1", deadline: "2025-01-01", platform: youtube, status: pending}
`,
		"bad entry amount": `
entries:
  - {id: e, type: income, amount: "-3", source: s, date: "2025-01-01", tag: Other}
`,
		"entry without id": `
entries:
  - {type: income, amount: "3", source: s, date: "2025-01-01", tag: Other}
`,
		"not yaml": "invites: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}
