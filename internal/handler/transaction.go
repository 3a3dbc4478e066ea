package handler

import (
	"net/http"

	"github.com/bkromhout/balances/internal/currency"
	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/models"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves transaction CRUD under a balance.
type TransactionHandler struct {
	Store *data.Store
	Codec currency.Codec
}

func NewTransactionHandler(store *data.Store, codec currency.Codec) *TransactionHandler {
	return &TransactionHandler{Store: store, Codec: codec}
}

// ---------- request/response shapes ----------

// Amount is the entered magnitude as a display string; the store applies the
// debit sign from the category. CheckNumber 0 or absent means no check.
type transactionReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Amount      string `json:"amount" binding:"required"`
	CategoryID  int64  `json:"category_id" binding:"required"`
	Timestamp   string `json:"timestamp"`
	CheckNumber int    `json:"check_number"`
	Note        string `json:"note" binding:"max=255"`
}

type transactionResp struct {
	UniqueID      int64  `json:"unique_id"`
	BalanceID     int64  `json:"balance_id"`
	Name          string `json:"name"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	CategoryID    int64  `json:"category_id"`
	Timestamp     string `json:"timestamp"`
	CheckNumber   *int   `json:"check_number,omitempty"`
	Note          string `json:"note,omitempty"`
}

func (h *TransactionHandler) toTransactionResp(t *models.Transaction) transactionResp {
	resp := transactionResp{
		UniqueID:      t.UniqueID,
		BalanceID:     t.BalanceID,
		Name:          t.Name,
		Amount:        t.Amount,
		AmountDisplay: h.Codec.Format(t.Amount, true),
		CategoryID:    t.CategoryID,
		Timestamp:     t.Timestamp.Format("2006-01-02T15:04:05"),
		Note:          t.Note,
	}
	if t.CheckNumber != models.NoCheckNumber {
		n := t.CheckNumber
		resp.CheckNumber = &n
	}
	return resp
}

func (h *TransactionHandler) bind(c *gin.Context) (data.NewTransaction, bool) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return data.NewTransaction{}, false
	}
	ts, ok := parseTimestamp(req.Timestamp)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid timestamp")
		return data.NewTransaction{}, false
	}
	return data.NewTransaction{
		Name:        req.Name,
		Amount:      h.Codec.Parse(req.Amount, 0),
		CategoryID:  req.CategoryID,
		Timestamp:   ts,
		CheckNumber: req.CheckNumber,
		Note:        req.Note,
	}, true
}

// ---------- handlers ----------

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	balanceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	nt, ok := h.bind(c)
	if !ok {
		return
	}
	nt.BalanceID = balanceID

	t, err := h.Store.CreateTransaction(nt)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": h.toTransactionResp(t)})
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	balanceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ts, err := h.Store.Transactions(balanceID)
	if err != nil {
		writeError(c, err)
		return
	}
	resps := make([]transactionResp, 0, len(ts))
	for i := range ts {
		resps = append(resps, h.toTransactionResp(&ts[i]))
	}
	util.Success(c, util.Response{"transactions": resps})
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	nt, ok := h.bind(c)
	if !ok {
		return
	}

	t, err := h.Store.UpdateTransaction(id, nt)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": h.toTransactionResp(t)})
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteTransaction(id); err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"deleted": id})
}
