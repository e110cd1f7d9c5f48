package compare

import "github.com/stl-ops/dashboard/internal/domain"

// Domain parameterizes the engine for one metric domain (bets placed vs
// winnings): which record fields count, which bet types exist, and the fixed
// region ordering its ranking charts use. Both domains share every line of
// engine control flow.
type Domain struct {
	Name string

	// fixed ordering of ranking output rows; see the note on the two lists
	// below
	Regions []string

	BetTypes       []string
	GameCategories []domain.GameCategory

	// labels for the two totals sub-metrics
	CountKey  string
	AmountKey string

	Count  func(r *domain.MetricRecord) float64
	Amount func(r *domain.MetricRecord) float64
}

// The betting dashboard labels the two reorganized regions MIMAROPA and
// CARAGA while the winning dashboard kept IV-B and XIII. The lists are not
// interchangeable; keep the exact spellings per domain.
var (
	bettingRegions = []string{
		"I", "II", "III", "IV-A", "MIMAROPA", "V", "VI", "VII", "VIII",
		"IX", "X", "XI", "XII", "CARAGA", "BARMM", "CAR", "NCR",
	}
	winningRegions = []string{
		"I", "II", "III", "IV-A", "IV-B", "V", "VI", "VII", "VIII",
		"IX", "X", "XI", "XII", "XIII", "BARMM", "CAR", "NCR",
	}
)

var gameCategories = []domain.GameCategory{
	domain.GameCategoryPares,
	domain.GameCategorySwer2,
	domain.GameCategorySwer3,
	domain.GameCategorySwer4,
}

// Betting is the "bets placed" domain: bettor counts and wagered amounts,
// with the Ramble bet type that has no winning-side counterpart.
func Betting() Domain {
	return Domain{
		Name:           "bets",
		Regions:        bettingRegions,
		BetTypes:       []string{"Tumbok", "Sahod", "Ramble"},
		GameCategories: gameCategories,
		CountKey:       "bettors",
		AmountKey:      "betAmount",
		Count:          func(r *domain.MetricRecord) float64 { return r.Bettors.Float() },
		Amount:         func(r *domain.MetricRecord) float64 { return r.BetAmount.Float() },
	}
}

// Winning is the "winnings" domain: winner counts and payout amounts.
func Winning() Domain {
	return Domain{
		Name:           "wins",
		Regions:        winningRegions,
		BetTypes:       []string{"Tumbok", "Sahod"},
		GameCategories: gameCategories,
		CountKey:       "winners",
		AmountKey:      "payoutAmount",
		Count:          func(r *domain.MetricRecord) float64 { return r.Winners.Float() },
		Amount:         func(r *domain.MetricRecord) float64 { return r.PayoutAmount.Float() },
	}
}
