package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// tablesWithCountry are the snapshot tables carrying a country column
var tablesWithCountry = map[domain.Table]bool{
	domain.TableConsultantCountry: true,
	domain.TableConsultantUser:    true,
	domain.TableGeniusUser:        true,
	domain.TableGeniusCountry:     true,
}

// tablesWithUser are the snapshot tables keyed by WQ id
var tablesWithUser = map[domain.Table]bool{
	domain.TableConsultantUser: true,
	domain.TableGeniusUser:     true,
}

// dateParam renders a snapshot date as a DATE literal parameter
func dateParam(t time.Time) string {
	return t.Format(domain.DATE_LAYOUT)
}

func dateParams(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = dateParam(t)
	}
	return out
}

// applySnapshotFilter adds the filter conditions to q.
// prefix qualifies column names for joined queries, e.g. "g.".
func applySnapshotFilter(q *gorm.DB, filter SnapshotFilter, prefix string, hasUser, hasLevel bool, countryExpr string) *gorm.DB {
	q = q.Where(prefix+"delete_flag = ?", false)
	if hasUser && len(filter.Users) > 0 {
		q = q.Where(prefix+`"user" IN ?`, filter.Users)
	}
	if countryExpr != "" && len(filter.Countries) > 0 {
		q = q.Where(countryExpr+" IN ?", filter.Countries)
	}
	if hasLevel && len(filter.Levels) > 0 {
		q = q.Where(prefix+"genius_level IN ?", filter.Levels)
	}
	if len(filter.RecordDates) > 0 {
		q = q.Where(prefix+"record_date IN ?", dateParams(filter.RecordDates))
	}
	if filter.Start != nil {
		q = q.Where(prefix+"record_date >= ?", dateParam(*filter.Start))
	}
	if filter.End != nil {
		q = q.Where(prefix+"record_date <= ?", dateParam(*filter.End))
	}
	return q
}

// LatestRecordDate returns the most recent record_date of a snapshot table
func (s *pgStore) LatestRecordDate(ctx context.Context, table domain.Table, query RecordDateQuery) (*time.Time, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("unknown snapshot table: %s", table)
	}
	if query.User != "" && !tablesWithUser[table] {
		return nil, fmt.Errorf("table %s has no user column", table)
	}

	q := s.db.WithContext(ctx).
		Table(string(table)).
		Select("MAX(record_date)").
		Where("delete_flag = ?", false)
	if query.OnOrBefore != nil {
		q = q.Where("record_date <= ?", dateParam(*query.OnOrBefore))
	}
	if query.Before != nil {
		q = q.Where("record_date < ?", dateParam(*query.Before))
	}
	if query.User != "" {
		q = q.Where(`"user" = ?`, query.User)
	}

	var latest sql.NullTime
	if err := q.Row().Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to get latest record date of %s: %w", table, err)
	}
	if !latest.Valid {
		return nil, nil
	}
	d := latest.Time.UTC()
	return &d, nil
}

// GetConsultantCountries retrieves country snapshots
func (s *pgStore) GetConsultantCountries(ctx context.Context, filter SnapshotFilter) ([]schema.ConsultantCountry, error) {
	var rows []schema.ConsultantCountry
	q := applySnapshotFilter(s.db.WithContext(ctx).Model(&schema.ConsultantCountry{}), filter, "", false, false, "country")
	err := q.Order("country ASC, record_date ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get consultant countries: %w", err)
	}
	return rows, nil
}

// ListConsultantCountryHistory retrieves one country's snapshots newest first
func (s *pgStore) ListConsultantCountryHistory(ctx context.Context, country string, limit, offset int) ([]schema.ConsultantCountry, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&schema.ConsultantCountry{}).
		Where("delete_flag = ? AND country = ?", false, country)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count country history: %w", err)
	}
	if total == 0 {
		return []schema.ConsultantCountry{}, 0, nil
	}

	var rows []schema.ConsultantCountry
	err := q.Order("record_date DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list country history: %w", err)
	}
	return rows, total, nil
}

// GetConsultantUsers retrieves user snapshots
func (s *pgStore) GetConsultantUsers(ctx context.Context, filter SnapshotFilter) ([]schema.ConsultantUser, error) {
	var rows []schema.ConsultantUser
	q := applySnapshotFilter(s.db.WithContext(ctx).Model(&schema.ConsultantUser{}), filter, "", true, false, "country")
	err := q.Order(`"user" ASC, record_date ASC`).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get consultant users: %w", err)
	}
	return rows, nil
}

// GetGeniusUsers retrieves genius user snapshots
func (s *pgStore) GetGeniusUsers(ctx context.Context, filter SnapshotFilter) ([]schema.GeniusUser, error) {
	var rows []schema.GeniusUser
	q := applySnapshotFilter(s.db.WithContext(ctx).Model(&schema.GeniusUser{}), filter, "", true, true, "country")
	err := q.Order(`"user" ASC, record_date ASC`).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get genius users: %w", err)
	}
	return rows, nil
}

// GetGeniusCountries retrieves genius country snapshots
func (s *pgStore) GetGeniusCountries(ctx context.Context, filter SnapshotFilter) ([]schema.GeniusCountry, error) {
	var rows []schema.GeniusCountry
	q := applySnapshotFilter(s.db.WithContext(ctx).Model(&schema.GeniusCountry{}), filter, "", false, false, "country")
	err := q.Order("country ASC, record_date ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get genius countries: %w", err)
	}
	return rows, nil
}

// GetGeniusWeightRows joins genius user snapshots with consultant weights
func (s *pgStore) GetGeniusWeightRows(ctx context.Context, filter SnapshotFilter) ([]GeniusWeightRow, error) {
	const countryExpr = "COALESCE(g.country, c.country)"

	q := s.db.WithContext(ctx).
		Table(string(domain.TableGeniusUser)+" AS g").
		Select(`g."user" AS "user", g.record_date, g.genius_level, ` + countryExpr + ` AS country, c.weight_factor`).
		Joins(`JOIN ` + string(domain.TableConsultantUser) + ` AS c ON c.delete_flag = FALSE AND c."user" = g."user" AND c.record_date = g.record_date`)
	q = applySnapshotFilter(q, filter, "g.", true, true, countryExpr)

	var rows []GeniusWeightRow
	if err := q.Order(`g."user" ASC, g.record_date ASC`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get genius weight rows: %w", err)
	}
	return rows, nil
}

// CountSnapshotDatesByUser counts distinct consultant snapshot dates per user
func (s *pgStore) CountSnapshotDatesByUser(ctx context.Context, users []string, onOrBefore time.Time) (map[string]int64, error) {
	counts := make(map[string]int64, len(users))
	if len(users) == 0 {
		return counts, nil
	}

	var rows []struct {
		User string `gorm:"column:user"`
		Days int64  `gorm:"column:days"`
	}
	err := s.db.WithContext(ctx).
		Model(&schema.ConsultantUser{}).
		Select(`"user" AS "user", COUNT(DISTINCT record_date) AS days`).
		Where(`delete_flag = ? AND "user" IN ? AND record_date <= ?`, false, users, dateParam(onOrBefore)).
		Group(`"user"`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count snapshot dates: %w", err)
	}
	for _, r := range rows {
		counts[r.User] = r.Days
	}
	return counts, nil
}

// ListDistinctCountries lists the countries present in a snapshot table
func (s *pgStore) ListDistinctCountries(ctx context.Context, table domain.Table) ([]string, error) {
	if !tablesWithCountry[table] {
		return nil, fmt.Errorf("table %s has no country column", table)
	}

	var countries []string
	err := s.db.WithContext(ctx).
		Table(string(table)).
		Distinct("country").
		Where("delete_flag = ? AND country IS NOT NULL AND country <> ''", false).
		Order("country ASC").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list countries of %s: %w", table, err)
	}
	return countries, nil
}

// ListGeniusLevels lists the genius levels present in the genius user snapshots
func (s *pgStore) ListGeniusLevels(ctx context.Context) ([]string, error) {
	var levels []string
	err := s.db.WithContext(ctx).
		Model(&schema.GeniusUser{}).
		Distinct("genius_level").
		Where("delete_flag = ? AND genius_level IS NOT NULL AND genius_level <> ''", false).
		Order("genius_level ASC").
		Pluck("genius_level", &levels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genius levels: %w", err)
	}
	return levels, nil
}

// ListEventMarkers retrieves event calendar rows
func (s *pgStore) ListEventMarkers(ctx context.Context, families []domain.MetricFamily, start, end *time.Time) ([]schema.EventUpdateRecord, error) {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = strings.ToLower(string(f))
	}

	q := s.db.WithContext(ctx).Model(&schema.EventUpdateRecord{})
	if len(names) > 0 {
		q = q.Where("LOWER(update_content) IN ?", names)
	}
	if start != nil {
		q = q.Where("update_date >= ?", dateParam(*start))
	}
	if end != nil {
		q = q.Where("update_date <= ?", dateParam(*end))
	}

	var rows []schema.EventUpdateRecord
	if err := q.Order("update_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list event markers: %w", err)
	}
	return rows, nil
}

// CountRows counts the non-deleted rows of a snapshot table
func (s *pgStore) CountRows(ctx context.Context, table domain.Table) (int64, error) {
	if !table.Valid() {
		return 0, fmt.Errorf("unknown snapshot table: %s", table)
	}

	var count int64
	err := s.db.WithContext(ctx).
		Table(string(table)).
		Where("delete_flag = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", table, err)
	}
	return count, nil
}

// GetActiveSystemUserByWQID retrieves an active system user
func (s *pgStore) GetActiveSystemUserByWQID(ctx context.Context, wqID string) (*schema.SystemUser, error) {
	var user schema.SystemUser
	err := s.db.WithContext(ctx).
		Where("wq_id = ? AND is_active = ? AND delete_flag = ?", wqID, true, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get system user: %w", err)
	}
	return &user, nil
}

// GetSystemUserByWQID retrieves a system user regardless of its state
func (s *pgStore) GetSystemUserByWQID(ctx context.Context, wqID string) (*schema.SystemUser, error) {
	var user schema.SystemUser
	err := s.db.WithContext(ctx).Where("wq_id = ?", wqID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get system user: %w", err)
	}
	return &user, nil
}

// CreateSystemUser inserts a system user
func (s *pgStore) CreateSystemUser(ctx context.Context, user *schema.SystemUser) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create system user: %w", err)
	}
	return nil
}

// ConsultantUserExists checks whether the WQ id appears in any consultant snapshot
func (s *pgStore) ConsultantUserExists(ctx context.Context, wqID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.ConsultantUser{}).
		Where(`delete_flag = ? AND "user" = ?`, false, wqID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check consultant user: %w", err)
	}
	return count > 0, nil
}

// CreateFeedback inserts a user feedback entry
func (s *pgStore) CreateFeedback(ctx context.Context, feedback *schema.UserFeedback) error {
	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// CreateRequestLog inserts a request log entry
func (s *pgStore) CreateRequestLog(ctx context.Context, entry *schema.RequestLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create request log: %w", err)
	}
	return nil
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
