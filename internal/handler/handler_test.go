package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bkromhout/balances/internal/config"
	"github.com/bkromhout/balances/internal/database"
	"github.com/bkromhout/balances/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "balances.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		App: config.AppConfig{
			Locale:             "en-US",
			DefaultYellowLimit: 5000,
			DefaultRedLimit:    2500,
		},
	}
	return router.SetupRouter(cfg, db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestNormalizeEndpoint(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		text string
		want string
	}{
		{"1.2.3", "1.23"},
		{"-", "-"},
		{"", ""},
	}
	for _, tt := range tests {
		w, resp := doJSON(t, r, http.MethodGet, "/api/normalize?text="+tt.text, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, tt.want, data["text"], "normalize %q", tt.text)
	}
}

func TestBalanceLifecycle(t *testing.T) {
	r := setupRouter(t)

	// Create a balance with a $1,000.00 base.
	w, resp := doJSON(t, r, http.MethodPost, "/api/balances", map[string]interface{}{
		"name":         "Checking",
		"base_amount":  "$1,000.00",
		"yellow_limit": "50.00",
		"red_limit":    "25.00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	balance := resp["data"].(map[string]interface{})["balance"].(map[string]interface{})
	assert.Equal(t, float64(100000), balance["base_amount"])
	assert.Equal(t, "$1,000.00", balance["total_display"])
	assert.Equal(t, "ok", balance["status"])
	balanceID := int64(balance["unique_id"].(float64))

	// A debit category and a $30.00 spend.
	w, resp = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "Groceries", "is_credit": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	category := resp["data"].(map[string]interface{})["category"].(map[string]interface{})
	categoryID := int64(category["unique_id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/balances/%d/transactions", balanceID),
		map[string]interface{}{
			"name":        "Food",
			"amount":      "30.00",
			"category_id": categoryID,
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	tx := resp["data"].(map[string]interface{})["transaction"].(map[string]interface{})
	assert.Equal(t, float64(-3000), tx["amount"], "debit flips the sign")
	assert.Equal(t, "-$30.00", tx["amount_display"])

	// The total reflects the spend.
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/balances/%d", balanceID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	balance = resp["data"].(map[string]interface{})["balance"].(map[string]interface{})
	assert.Equal(t, float64(97000), balance["total"])
	assert.Equal(t, "$970.00", balance["total_display"])

	// The referenced category cannot be deleted.
	w, resp = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, resp["message"], "1 transaction")

	// Deleting the balance cascades; its transactions page is gone too.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/balances/%d", balanceID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/balances/%d/transactions", balanceID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Now the category delete goes through.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", categoryID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaleBalanceEdit(t *testing.T) {
	r := setupRouter(t)
	w, _ := doJSON(t, r, http.MethodPut, "/api/balances/999", map[string]interface{}{
		"name": "Ghost", "yellow_limit": "50.00", "red_limit": "25.00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
