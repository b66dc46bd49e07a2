package types

// Order enumeration for sorting
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Desc() bool {
	return o == OrderDesc
}

func (o Order) Asc() bool {
	return o == OrderAsc
}

// Valid checks if an order is valid
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// MergedSortField enumerates the sortable columns of the consultant merged page
type MergedSortField string

const (
	MergedSortUser                          MergedSortField = "user"
	MergedSortCountry                       MergedSortField = "country"
	MergedSortUniversity                    MergedSortField = "university"
	MergedSortGeniusLevel                   MergedSortField = "genius_level"
	MergedSortBestLevel                     MergedSortField = "best_level"
	MergedSortWeightFactor                  MergedSortField = "weight_factor"
	MergedSortValueFactor                   MergedSortField = "value_factor"
	MergedSortDailyOsmosisRank              MergedSortField = "daily_osmosis_rank"
	MergedSortDataFieldsUsed                MergedSortField = "data_fields_used"
	MergedSortSubmissionsCount              MergedSortField = "submissions_count"
	MergedSortMeanProdCorrelation           MergedSortField = "mean_prod_correlation"
	MergedSortMeanSelfCorrelation           MergedSortField = "mean_self_correlation"
	MergedSortSuperAlphaSubmissionsCount    MergedSortField = "super_alpha_submissions_count"
	MergedSortSuperAlphaMeanProdCorrelation MergedSortField = "super_alpha_mean_prod_correlation"
	MergedSortSuperAlphaMeanSelfCorrelation MergedSortField = "super_alpha_mean_self_correlation"
	MergedSortAlphaCount                    MergedSortField = "alpha_count"
	MergedSortPyramidCount                  MergedSortField = "pyramid_count"
	MergedSortCombinedAlpha                 MergedSortField = "combined_alpha_performance"
	MergedSortCombinedPowerPool             MergedSortField = "combined_power_pool_alpha_performance"
	MergedSortCombinedSelected              MergedSortField = "combined_selected_alpha_performance"
	MergedSortOperatorCount                 MergedSortField = "operator_count"
	MergedSortOperatorAvg                   MergedSortField = "operator_avg"
	MergedSortFieldCount                    MergedSortField = "field_count"
	MergedSortFieldAvg                      MergedSortField = "field_avg"
	MergedSortCommunityActivity             MergedSortField = "community_activity"
	MergedSortMaxSimulationStreak           MergedSortField = "max_simulation_streak"
	MergedSortRecordCoverage                MergedSortField = "record_coverage"
)

// Valid checks if a merged page sort field is valid
func (f MergedSortField) Valid() bool {
	switch f {
	case MergedSortUser, MergedSortCountry, MergedSortUniversity, MergedSortGeniusLevel, MergedSortBestLevel,
		MergedSortWeightFactor, MergedSortValueFactor, MergedSortDailyOsmosisRank, MergedSortDataFieldsUsed,
		MergedSortSubmissionsCount, MergedSortMeanProdCorrelation, MergedSortMeanSelfCorrelation,
		MergedSortSuperAlphaSubmissionsCount, MergedSortSuperAlphaMeanProdCorrelation, MergedSortSuperAlphaMeanSelfCorrelation,
		MergedSortAlphaCount, MergedSortPyramidCount, MergedSortCombinedAlpha, MergedSortCombinedPowerPool,
		MergedSortCombinedSelected, MergedSortOperatorCount, MergedSortOperatorAvg, MergedSortFieldCount,
		MergedSortFieldAvg, MergedSortCommunityActivity, MergedSortMaxSimulationStreak, MergedSortRecordCoverage:
		return true
	}
	return false
}

// ValueFactorSortField enumerates the sortable columns of value factor user changes
type ValueFactorSortField string

const (
	ValueFactorSortChange ValueFactorSortField = "change"
	ValueFactorSortBase   ValueFactorSortField = "base_value_factor"
	ValueFactorSortTarget ValueFactorSortField = "target_value_factor"
)

// Valid checks if a value factor sort field is valid
func (f ValueFactorSortField) Valid() bool {
	return f == ValueFactorSortChange || f == ValueFactorSortBase || f == ValueFactorSortTarget
}

// CombinedSortField enumerates the sortable columns of combined user changes
type CombinedSortField string

const (
	CombinedSortAlphaChange     CombinedSortField = "alpha_change"
	CombinedSortPowerPoolChange CombinedSortField = "power_pool_change"
	CombinedSortSelectedChange  CombinedSortField = "selected_change"
	CombinedSortBaseAlpha       CombinedSortField = "base_alpha"
	CombinedSortTargetAlpha     CombinedSortField = "target_alpha"
	CombinedSortBasePowerPool   CombinedSortField = "base_power_pool"
	CombinedSortTargetPowerPool CombinedSortField = "target_power_pool"
	CombinedSortBaseSelected    CombinedSortField = "base_selected"
	CombinedSortTargetSelected  CombinedSortField = "target_selected"
)

// Valid checks if a combined sort field is valid
func (f CombinedSortField) Valid() bool {
	switch f {
	case CombinedSortAlphaChange, CombinedSortPowerPoolChange, CombinedSortSelectedChange,
		CombinedSortBaseAlpha, CombinedSortTargetAlpha,
		CombinedSortBasePowerPool, CombinedSortTargetPowerPool,
		CombinedSortBaseSelected, CombinedSortTargetSelected:
		return true
	}
	return false
}
