package schema

import "time"

// EventUpdateRecord represents the event_update_record table, a sparse calendar
// of dates on which a metric family received a meaningful update
type EventUpdateRecord struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UpdateContent names the metric family ("value_factor" or "combined"), case-insensitive
	UpdateContent string    `gorm:"column:update_content;not null;type:varchar(64)"`
	UpdateDate    time.Time `gorm:"column:update_date;not null;type:date"`
	// DateRange is a human-readable label for the period the update covers
	DateRange *string   `gorm:"column:date_range;type:varchar(64)"`
	Remark    *string   `gorm:"column:remark;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EventUpdateRecord model
func (EventUpdateRecord) TableName() string {
	return "event_update_record"
}
