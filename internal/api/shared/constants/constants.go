package constants

import "github.com/feral-file/ff-leaderboard/internal/api/shared/types"

const (
	DEFAULT_PAGE = 1

	DEFAULT_DASHBOARD_PAGE_SIZE       = 50
	MAX_DASHBOARD_PAGE_SIZE           = 100
	DEFAULT_COUNTRY_HISTORY_PAGE_SIZE = 20
	DEFAULT_CHANGES_PAGE_SIZE         = 20
	MAX_CHANGES_PAGE_SIZE             = 100
	DEFAULT_MERGED_PAGE_SIZE          = 20
	MAX_MERGED_PAGE_SIZE              = 200

	DEFAULT_LIMIT_DAYS    = 30
	MAX_LIMIT_DAYS        = 365
	DEFAULT_LOOKBACK_DAYS = 7

	DEFAULT_COUNTRY_LEADERBOARD_LIMIT = 10
	DEFAULT_USER_LEADERBOARD_LIMIT    = 6
	MAX_LEADERBOARD_LIMIT             = 100

	// TOP_MOVERS bounds the gainer, decliner and per-dimension lists of cohort analyses
	TOP_MOVERS = 20

	MAX_WQ_ID_LENGTH            = 32
	MAX_FEEDBACK_CONTENT_LENGTH = 2000
	MAX_FEEDBACK_FIELD_LENGTH   = 200

	DEFAULT_ORDER        = types.OrderDesc
	DEFAULT_MERGED_ORDER = types.OrderAsc
)
