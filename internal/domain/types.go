package domain

import (
	"fmt"
	"strings"
)

// Table names a snapshot table that can be counted or scanned for dates
type Table string

const (
	TableConsultantCountry    Table = "leaderboard_consultant_country_or_region"
	TableConsultantUser       Table = "leaderboard_consultant_user"
	TableConsultantUniversity Table = "leaderboard_consultant_university"
	TableGeniusUser           Table = "leaderboard_genius_user"
	TableGeniusCountry        Table = "leaderboard_genius_country_or_region"
)

// SnapshotTables lists every snapshot table in display order
var SnapshotTables = []Table{
	TableConsultantCountry,
	TableConsultantUser,
	TableConsultantUniversity,
	TableGeniusUser,
	TableGeniusCountry,
}

// Valid reports whether t is a known snapshot table
func (t Table) Valid() bool {
	for _, known := range SnapshotTables {
		if t == known {
			return true
		}
	}
	return false
}

// GeniusLevel is the tier label of the genius classification
type GeniusLevel string

const (
	GeniusLevelGrandmaster GeniusLevel = "GRANDMASTER"
	GeniusLevelMaster      GeniusLevel = "MASTER"
	GeniusLevelExpert      GeniusLevel = "EXPERT"
	GeniusLevelGold        GeniusLevel = "GOLD"
)

// RankedGeniusLevels are the tiers tracked by level weight changes, highest first
var RankedGeniusLevels = []GeniusLevel{
	GeniusLevelGrandmaster,
	GeniusLevelMaster,
	GeniusLevelExpert,
	GeniusLevelGold,
}

// Order returns the position of the level in the tier ordering.
// Lower is better; unranked labels sort after every ranked tier.
func (l GeniusLevel) Order() int {
	for i, level := range RankedGeniusLevels {
		if l == level {
			return i
		}
	}
	return len(RankedGeniusLevels)
}

// MetricFamily names a family of metrics tracked by the event calendar
type MetricFamily string

const (
	MetricFamilyValueFactor MetricFamily = "value_factor"
	MetricFamilyCombined    MetricFamily = "combined"
)

// ParseMetricFamily parses an event calendar update_content value
func ParseMetricFamily(s string) (MetricFamily, error) {
	switch MetricFamily(strings.ToLower(strings.TrimSpace(s))) {
	case MetricFamilyValueFactor:
		return MetricFamilyValueFactor, nil
	case MetricFamilyCombined:
		return MetricFamilyCombined, nil
	default:
		return "", fmt.Errorf("%w: metric family %q", ErrUnknownMetric, s)
	}
}

// CorrelationType selects which correlation pair ranks users
type CorrelationType string

const (
	CorrelationProd CorrelationType = "prod"
	CorrelationSelf CorrelationType = "self"
)

// ParseCorrelationType validates a correlation selector against its closed set
func ParseCorrelationType(s string) (CorrelationType, error) {
	switch CorrelationType(strings.ToLower(strings.TrimSpace(s))) {
	case CorrelationProd:
		return CorrelationProd, nil
	case CorrelationSelf:
		return CorrelationSelf, nil
	default:
		return "", fmt.Errorf("%w: correlation type %q", ErrUnknownMetric, s)
	}
}

// FeedbackType is the category of a user feedback entry
type FeedbackType string

const (
	FeedbackTypeBug      FeedbackType = "bug"
	FeedbackTypeOptimize FeedbackType = "optimize"
	FeedbackTypeRequest  FeedbackType = "request"
)

// Valid reports whether f is an accepted feedback category
func (f FeedbackType) Valid() bool {
	switch f {
	case FeedbackTypeBug, FeedbackTypeOptimize, FeedbackTypeRequest:
		return true
	}
	return false
}

// NormalizeWQID trims and upper-cases a WQ id so lookups are case-insensitive
func NormalizeWQID(wqID string) string {
	return strings.ToUpper(strings.TrimSpace(wqID))
}

// DimensionOrUnknown returns the trimmed value, or UNKNOWN_DIMENSION when it is absent or blank
func DimensionOrUnknown(value *string) string {
	if value == nil {
		return UNKNOWN_DIMENSION
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return UNKNOWN_DIMENSION
	}
	return v
}

// SplitList parses a comma-separated filter value, dropping blanks and duplicates
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		v := strings.TrimSpace(part)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
