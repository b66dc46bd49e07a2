package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RequestLog represents the request_log table - one row per served API request
type RequestLog struct {
	ID        uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID string  `gorm:"column:request_id;type:varchar(36)"`
	UserID    *uint64 `gorm:"column:user_id"`
	WQID      *string `gorm:"column:wq_id;type:varchar(64)"`
	Method    string  `gorm:"column:method;not null;type:varchar(10)"`
	Path      string  `gorm:"column:path;not null;type:text"`
	// QueryParams holds the raw query string as a JSON object of key to values
	QueryParams datatypes.JSON `gorm:"column:query_params;type:jsonb"`
	// Body is the masked and truncated request body for write methods
	Body         *string   `gorm:"column:body;type:text"`
	StatusCode   int       `gorm:"column:status_code;not null"`
	ResponseTime int64     `gorm:"column:response_time;not null"` // in milliseconds
	IPAddress    string    `gorm:"column:ip_address;type:varchar(64)"`
	UserAgent    string    `gorm:"column:user_agent;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RequestLog model
func (RequestLog) TableName() string {
	return "request_log"
}
