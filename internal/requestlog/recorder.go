package requestlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-leaderboard/internal/config"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

const (
	// MAX_BODY_LENGTH is the number of characters of a request body kept in the log
	MAX_BODY_LENGTH = 1000
	// MASK replaces the value of sensitive body fields
	MASK = "***"

	writeTimeout = 5 * time.Second
)

var sensitiveField = regexp.MustCompile(`("(?i:password|token)"\s*:\s*)"(?:[^"\\]|\\.)*"`)

// Recorder defines the interface for the persisted request log
//
//go:generate mockgen -source=recorder.go -destination=../mocks/requestlog_recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// Record queues an entry for an asynchronous write. It never blocks on the database.
	Record(entry *schema.RequestLog)
	// Close waits for queued entries to be written
	Close()
}

type recorder struct {
	store     store.Store
	pool      pond.Pool
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewRecorder creates a recorder backed by a bounded worker pool
func NewRecorder(st store.Store, cfg config.RequestLogConfig) Recorder {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 4
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1000
	}

	return &recorder{
		store: st,
		pool: pond.NewPool(
			poolSize,
			pond.WithQueueSize(queueSize),
			pond.WithNonBlocking(true),
		),
	}
}

func (r *recorder) Record(entry *schema.RequestLog) {
	if entry == nil || r.closed.Load() {
		return
	}

	err := r.pool.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := r.store.CreateRequestLog(ctx, entry); err != nil {
			logger.Warn("Failed to persist request log",
				zap.String("request_id", entry.RequestID),
				zap.String("path", entry.Path),
				zap.Error(err))
		}
	})
	if err != nil {
		logger.Warn("Request log dropped",
			zap.String("request_id", entry.RequestID),
			zap.Uint64("waiting", r.pool.WaitingTasks()),
			zap.Error(err))
	}
}

func (r *recorder) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		r.pool.StopAndWait()
		logger.Info("Request log recorder stopped",
			zap.Uint64("completed", r.pool.CompletedTasks()),
			zap.Uint64("submitted", r.pool.SubmittedTasks()))
	})
}

// CapturesBody reports whether the body of a request with this method is logged
func CapturesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// SanitizeBody masks password and token fields and truncates the body.
// It returns nil for an empty body.
func SanitizeBody(body []byte) *string {
	if len(body) == 0 {
		return nil
	}

	masked := sensitiveField.ReplaceAllString(string(body), `${1}"`+MASK+`"`)
	runes := []rune(masked)
	if len(runes) > MAX_BODY_LENGTH {
		masked = string(runes[:MAX_BODY_LENGTH])
	}
	return &masked
}

// EncodeQuery renders query parameters as a JSON object of key to values
func EncodeQuery(query url.Values) datatypes.JSON {
	if len(query) == 0 {
		return nil
	}
	data, err := json.Marshal(query)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
