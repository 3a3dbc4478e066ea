package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/bkromhout/balances/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxAuditBody caps how much of a request body is stored per audit row.
const maxAuditBody = 2000

// AuditMiddleware records mutating requests (anything but GET) to the
// audit_logs table after the handler runs.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		body := string(bodyBytes)
		if len(body) > maxAuditBody {
			body = body[:maxAuditBody]
		}

		entry := models.AuditLog{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Body:   body,
			Status: c.Writer.Status(),
			IP:     c.ClientIP(),
		}
		_ = db.Create(&entry).Error
	}
}
