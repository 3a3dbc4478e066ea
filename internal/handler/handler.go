// Package handler exposes the balances tracker over HTTP. Handlers are the
// UI collaborator of the core: they convert display strings to minor units
// with the currency codec, run validation, and translate store errors into
// field-level messages.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
)

// timestampLayouts are the accepted formats for transaction timestamps.
var timestampLayouts = []string{
	time.RFC3339,          // 2025-12-03T00:00:00+08:00
	"2006-01-02T15:04:05", // 2025-12-03T00:00:00
	"2006-01-02",          // 2025-12-03
}

// parseTimestamp tries the accepted layouts in order. An empty string means
// "now"; an unrecognized one reports false.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// writeError maps store errors onto the response envelope. Validation
// problems and blocked deletes come back with their message intact; anything
// unexpected is a plain 500.
func writeError(c *gin.Context, err error) {
	var ve *data.ValidationError
	var inUse *data.CategoryInUseError
	switch {
	case errors.As(err, &ve):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, ve.Error())
	case errors.As(err, &inUse):
		util.Error(c, http.StatusConflict, util.CodeConflict, inUse.Error())
	case errors.Is(err, data.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
