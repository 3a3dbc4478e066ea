package data

// WarnLimitsResult reports the validity of a pair of warning limits.
type WarnLimitsResult int

const (
	// WarnLimitsOK means the limits are valid.
	WarnLimitsOK WarnLimitsResult = iota
	// WarnLimitsOverlap means the yellow limit does not sit strictly above
	// the red limit.
	WarnLimitsOverlap
	// WarnLimitsNegative means one or both limits are negative.
	WarnLimitsNegative
)

func (r WarnLimitsResult) String() string {
	switch r {
	case WarnLimitsOK:
		return "ok"
	case WarnLimitsOverlap:
		return "overlap"
	case WarnLimitsNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// ValidateWarnLimits checks a pair of warning limits. Both must be
// non-negative (checked first) and the yellow limit must be strictly greater
// than the red limit: a total above yellow is healthy, between red and yellow
// is cautionary, at or below red is critical.
func ValidateWarnLimits(yellow, red int64) WarnLimitsResult {
	if yellow < 0 || red < 0 {
		return WarnLimitsNegative
	}
	if yellow <= red {
		return WarnLimitsOverlap
	}
	return WarnLimitsOK
}
