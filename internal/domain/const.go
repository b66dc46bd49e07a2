package domain

const (
	// DATE_LAYOUT is the wire and storage format of snapshot dates
	DATE_LAYOUT = "2006-01-02"

	// UNKNOWN_DIMENSION labels rows whose grouping attribute is absent
	UNKNOWN_DIMENSION = "UNKNOWN"

	// VALUE_FACTOR_NEUTRAL is the midpoint a value factor starts from
	VALUE_FACTOR_NEUTRAL = 0.5

	// EPSILON_VALUE_FACTOR tolerates storage noise around the value factor midpoint
	EPSILON_VALUE_FACTOR = 1e-9

	// EPSILON_COMBINED tolerates storage noise around zero for combined performance figures
	EPSILON_COMBINED = 1e-12
)
