package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swedensai/seo-website/pkg/seoapi"
)

func TestChangeOf(t *testing.T) {
	tests := []struct {
		name string
		cur  *int
		prev *int
		want RankChange
	}{
		{"improved", intPtr(3), intPtr(5), RankChange{Known: true, Improved: true, Delta: 2}},
		{"dropped", intPtr(9), intPtr(6), RankChange{Known: true, Improved: false, Delta: 3}},
		{"unchanged", intPtr(4), intPtr(4), RankChange{Known: true, Improved: false, Delta: 0}},
		{"no previous", intPtr(4), nil, RankChange{}},
		{"zero previous", intPtr(4), intPtr(0), RankChange{}},
		{"no current", nil, intPtr(4), RankChange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangeOf(seoapi.Keyword{Keyword: "k", CurrentRank: tt.cur, PreviousRank: tt.prev})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChangeOf_MockKeywordsAllImproved(t *testing.T) {
	for _, k := range MockSnapshot().Keywords {
		c := ChangeOf(k)
		assert.True(t, c.Known, k.Keyword)
		assert.True(t, c.Improved, k.Keyword)
		assert.Equal(t, *k.PreviousRank-*k.CurrentRank, c.Delta, k.Keyword)
	}
}
