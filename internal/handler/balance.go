package handler

import (
	"net/http"
	"strconv"

	"github.com/bkromhout/balances/internal/config"
	"github.com/bkromhout/balances/internal/currency"
	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/models"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
)

// BalanceHandler serves balance CRUD and totals.
type BalanceHandler struct {
	Store *data.Store
	Codec currency.Codec
	App   config.AppConfig
}

func NewBalanceHandler(store *data.Store, codec currency.Codec, app config.AppConfig) *BalanceHandler {
	return &BalanceHandler{Store: store, Codec: codec, App: app}
}

// ---------- request/response shapes ----------

// Money fields arrive as display strings; the codec turns them into minor
// units. Limits left empty fall back to the configured defaults.
type createBalanceReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	BaseAmount  string `json:"base_amount"`
	YellowLimit string `json:"yellow_limit"`
	RedLimit    string `json:"red_limit"`
}

type updateBalanceReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	YellowLimit string `json:"yellow_limit" binding:"required"`
	RedLimit    string `json:"red_limit" binding:"required"`
}

type balanceResp struct {
	UniqueID     int64  `json:"unique_id"`
	Name         string `json:"name"`
	BaseAmount   int64  `json:"base_amount"`
	YellowLimit  int64  `json:"yellow_limit"`
	RedLimit     int64  `json:"red_limit"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
	Status       string `json:"status"`
}

func (h *BalanceHandler) toBalanceResp(b *models.Balance, total int64) balanceResp {
	return balanceResp{
		UniqueID:     b.UniqueID,
		Name:         b.Name,
		BaseAmount:   b.BaseAmount,
		YellowLimit:  b.YellowLimit,
		RedLimit:     b.RedLimit,
		Total:        total,
		TotalDisplay: h.Codec.Format(total, true),
		Status:       string(data.StatusOf(total, b.YellowLimit, b.RedLimit)),
	}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return id, true
}

// limitOrDefault parses a limit display string, using def when empty.
func (h *BalanceHandler) limitOrDefault(text string, def int64) int64 {
	if text == "" {
		return def
	}
	return h.Codec.Parse(text, def)
}

// ---------- handlers ----------

func (h *BalanceHandler) CreateBalance(c *gin.Context) {
	var req createBalanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	b, err := h.Store.CreateBalance(data.NewBalance{
		Name:        req.Name,
		BaseAmount:  h.Codec.Parse(req.BaseAmount, 0),
		YellowLimit: h.limitOrDefault(req.YellowLimit, h.App.DefaultYellowLimit),
		RedLimit:    h.limitOrDefault(req.RedLimit, h.App.DefaultRedLimit),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"balance": h.toBalanceResp(b, b.BaseAmount)})
}

func (h *BalanceHandler) ListBalances(c *gin.Context) {
	bs, err := h.Store.Balances()
	if err != nil {
		writeError(c, err)
		return
	}
	resps := make([]balanceResp, 0, len(bs))
	for i := range bs {
		total, err := h.Store.TotalBalance(bs[i].UniqueID)
		if err != nil {
			writeError(c, err)
			return
		}
		resps = append(resps, h.toBalanceResp(&bs[i], total))
	}
	util.Success(c, util.Response{"balances": resps})
}

func (h *BalanceHandler) GetBalance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.Store.Balance(id)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"balance": h.toBalanceResp(b, data.TotalOf(b))})
}

func (h *BalanceHandler) UpdateBalance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateBalanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	// Base amount is immutable once created; only name and limits move.
	b, err := h.Store.UpdateBalance(id, req.Name,
		h.Codec.Parse(req.YellowLimit, -1),
		h.Codec.Parse(req.RedLimit, -1))
	if err != nil {
		writeError(c, err)
		return
	}
	total, err := h.Store.TotalBalance(b.UniqueID)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"balance": h.toBalanceResp(b, total)})
}

func (h *BalanceHandler) DeleteBalance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteBalance(id); err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"deleted": id})
}
