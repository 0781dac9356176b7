package dashboard

import "github.com/swedensai/seo-website/pkg/seoapi"

// RankChange describes how a keyword moved since the previous check.
// Ranks are positions, so moving from #9 to #4 is an improvement of 5.
type RankChange struct {
	// Known is false when there is nothing to compare against; the
	// indicator is not shown then.
	Known    bool
	Improved bool
	Delta    int
}

// ChangeOf computes the rank change of k. A missing or zero previous rank
// means the keyword has not been ranked before.
func ChangeOf(k seoapi.Keyword) RankChange {
	if k.CurrentRank == nil || k.PreviousRank == nil || *k.PreviousRank == 0 {
		return RankChange{}
	}

	cur, prev := *k.CurrentRank, *k.PreviousRank
	delta := prev - cur
	if delta < 0 {
		delta = -delta
	}
	return RankChange{
		Known:    true,
		Improved: cur < prev,
		Delta:    delta,
	}
}
