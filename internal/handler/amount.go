package handler

import (
	"github.com/bkromhout/balances/internal/currency"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
)

// AmountHandler exposes the currency codec to input fields: clients call
// normalize on every focus change to re-round in-progress text.
type AmountHandler struct {
	Codec currency.Codec
}

func NewAmountHandler(codec currency.Codec) *AmountHandler {
	return &AmountHandler{Codec: codec}
}

// NormalizeAmount re-rounds an in-progress amount string and also returns
// its minor-unit value (0 when the text is empty or unparsable).
func (h *AmountHandler) NormalizeAmount(c *gin.Context) {
	text := c.Query("text")
	util.Success(c, util.Response{
		"text":   h.Codec.Normalize(text),
		"amount": h.Codec.Parse(text, 0),
	})
}
