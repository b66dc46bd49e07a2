package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// RecordDateQuery narrows a latest-record-date lookup
type RecordDateQuery struct {
	// OnOrBefore bounds the result to dates at or before the value
	OnOrBefore *time.Time
	// Before bounds the result to dates strictly before the value
	Before *time.Time
	// User restricts user tables to a single WQ id
	User string
}

// SnapshotFilter selects snapshot rows. Empty fields do not filter.
type SnapshotFilter struct {
	Users     []string
	Countries []string
	// Levels filters genius tables by genius_level
	Levels      []string
	RecordDates []time.Time
	Start       *time.Time
	End         *time.Time
}

// GeniusWeightRow is a genius snapshot joined with the weight of the same user on the same date
type GeniusWeightRow struct {
	User         string    `gorm:"column:user"`
	RecordDate   time.Time `gorm:"column:record_date"`
	GeniusLevel  *string   `gorm:"column:genius_level"`
	Country      *string   `gorm:"column:country"`
	WeightFactor *float64  `gorm:"column:weight_factor"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// LatestRecordDate returns the most recent non-deleted record_date of a snapshot table, or nil when none matches
	LatestRecordDate(ctx context.Context, table domain.Table, query RecordDateQuery) (*time.Time, error)

	// GetConsultantCountries retrieves country snapshots ordered by country then record_date
	GetConsultantCountries(ctx context.Context, filter SnapshotFilter) ([]schema.ConsultantCountry, error)
	// ListConsultantCountryHistory retrieves one country's snapshots newest first, with the total count
	ListConsultantCountryHistory(ctx context.Context, country string, limit, offset int) ([]schema.ConsultantCountry, int64, error)
	// GetConsultantUsers retrieves user snapshots ordered by user then record_date
	GetConsultantUsers(ctx context.Context, filter SnapshotFilter) ([]schema.ConsultantUser, error)
	// GetGeniusUsers retrieves genius user snapshots ordered by user then record_date
	GetGeniusUsers(ctx context.Context, filter SnapshotFilter) ([]schema.GeniusUser, error)
	// GetGeniusCountries retrieves genius country snapshots ordered by country then record_date
	GetGeniusCountries(ctx context.Context, filter SnapshotFilter) ([]schema.GeniusCountry, error)
	// GetGeniusWeightRows joins genius user snapshots with consultant weights on (user, record_date).
	// The country falls back to the consultant country when the genius row has none.
	GetGeniusWeightRows(ctx context.Context, filter SnapshotFilter) ([]GeniusWeightRow, error)
	// CountSnapshotDatesByUser counts the distinct consultant snapshot dates of each user up to onOrBefore
	CountSnapshotDatesByUser(ctx context.Context, users []string, onOrBefore time.Time) (map[string]int64, error)

	// ListDistinctCountries lists the non-empty countries of a snapshot table in ascending order
	ListDistinctCountries(ctx context.Context, table domain.Table) ([]string, error)
	// ListGeniusLevels lists the non-empty genius levels in ascending order
	ListGeniusLevels(ctx context.Context) ([]string, error)
	// ListEventMarkers retrieves event calendar rows of the given families ordered by update_date then id
	ListEventMarkers(ctx context.Context, families []domain.MetricFamily, start, end *time.Time) ([]schema.EventUpdateRecord, error)
	// CountRows counts the non-deleted rows of a snapshot table
	CountRows(ctx context.Context, table domain.Table) (int64, error)

	// GetActiveSystemUserByWQID retrieves an active, non-deleted system user
	GetActiveSystemUserByWQID(ctx context.Context, wqID string) (*schema.SystemUser, error)
	// GetSystemUserByWQID retrieves a system user regardless of its state
	GetSystemUserByWQID(ctx context.Context, wqID string) (*schema.SystemUser, error)
	// CreateSystemUser inserts a system user
	CreateSystemUser(ctx context.Context, user *schema.SystemUser) error
	// ConsultantUserExists checks whether the WQ id appears in any consultant snapshot
	ConsultantUserExists(ctx context.Context, wqID string) (bool, error)
	// CreateFeedback inserts a user feedback entry
	CreateFeedback(ctx context.Context, feedback *schema.UserFeedback) error
	// CreateRequestLog inserts a request log entry
	CreateRequestLog(ctx context.Context, entry *schema.RequestLog) error

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
