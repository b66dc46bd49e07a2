package executor

import (
	"time"

	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
)

// GeniusUserWeightChangesParams selects and pages genius user weight changes
type GeniusUserWeightChangesParams struct {
	Levels    []string
	Countries []string
	Start     *time.Time
	End       *time.Time
	Order     types.Order
	Page      int
	PageSize  int
}

// MergedPageParams selects, sorts and pages the consultant merged page
type MergedPageParams struct {
	// RecordDate defaults to the latest consultant snapshot
	RecordDate  *time.Time
	Countries   []string
	Levels      []string
	UserKeyword string
	SortBy      types.MergedSortField
	Order       types.Order
	Page        int
	PageSize    int
}

// ValueFactorUserChangesParams filters, sorts and pages value factor user changes
type ValueFactorUserChangesParams struct {
	Countries       []string
	GeniusLevels    []string
	ExcludeBothHalf bool
	SortBy          types.ValueFactorSortField
	Order           types.Order
	Page            int
	PageSize        int
}

// CombinedFilter narrows the comparable users of a combined performance comparison
type CombinedFilter struct {
	Countries []string
	Levels    []string

	ExcludeAlphaBothZero     bool
	ExcludePowerPoolBothZero bool
	ExcludeSelectedBothZero  bool
}

// CombinedUserChangesParams filters, sorts and pages combined user changes
type CombinedUserChangesParams struct {
	CombinedFilter
	SortBy   types.CombinedSortField
	Order    types.Order
	Page     int
	PageSize int
}
