package domain

// Category selects which dimension processor handles a comparison.
type Category string

const (
	CategoryTotals             Category = "totals"
	CategoryByBetTypeCount     Category = "by_bet_type_count"
	CategoryByBetTypeAmount    Category = "by_bet_type_amount"
	CategoryByGameTypeCount    Category = "by_game_type_count"
	CategoryByGameTypeAmount   Category = "by_game_type_amount"
	CategoryRegionRankingValue Category = "region_ranking_value"
	CategoryRegionRankingCount Category = "region_ranking_count"
)

// TimeMode selects how the two comparison periods are described.
type TimeMode string

const (
	TimeModeSpecificDate TimeMode = "specific_date"
	TimeModeDateRange    TimeMode = "date_range"
)

// ComparisonRequest describes one comparison: a category, a time-selection
// mode with its dates, and an optional game-category filter. The engine reads
// nothing but this value object.
type ComparisonRequest struct {
	Category Category `json:"category" validate:"required"`
	TimeMode TimeMode `json:"timeMode" validate:"required,oneof=specific_date date_range"`

	// specific_date mode
	FirstDate  string `json:"firstDate,omitempty"`
	SecondDate string `json:"secondDate,omitempty"`

	// date_range mode
	FirstRangeStart  string `json:"firstRangeStart,omitempty"`
	FirstRangeEnd    string `json:"firstRangeEnd,omitempty"`
	SecondRangeStart string `json:"secondRangeStart,omitempty"`
	SecondRangeEnd   string `json:"secondRangeEnd,omitempty"`

	// 0 = no filter
	GameCategoryFilter GameCategory `json:"gameCategoryFilter,omitempty"`
}
