package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWarnLimits(t *testing.T) {
	tests := []struct {
		yellow int64
		red    int64
		want   WarnLimitsResult
	}{
		{-1, 10, WarnLimitsNegative},
		{10, -1, WarnLimitsNegative},
		{-5, -5, WarnLimitsNegative},
		{10, 10, WarnLimitsOverlap},
		{10, 15, WarnLimitsOverlap},
		{0, 0, WarnLimitsOverlap},
		{50, 25, WarnLimitsOK},
		{1, 0, WarnLimitsOK},
	}
	for _, tt := range tests {
		got := ValidateWarnLimits(tt.yellow, tt.red)
		assert.Equal(t, tt.want, got, "ValidateWarnLimits(%d, %d)", tt.yellow, tt.red)
	}
}

func TestWarnLimitsResultString(t *testing.T) {
	assert.Equal(t, "ok", WarnLimitsOK.String())
	assert.Equal(t, "overlap", WarnLimitsOverlap.String())
	assert.Equal(t, "negative", WarnLimitsNegative.String())
}
