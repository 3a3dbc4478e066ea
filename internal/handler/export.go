package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/bkromhout/balances/internal/currency"
	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/models"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes a balance's transaction ledger as CSV or XLSX.
type ExportHandler struct {
	Store *data.Store
	Codec currency.Codec
}

func NewExportHandler(store *data.Store, codec currency.Codec) *ExportHandler {
	return &ExportHandler{Store: store, Codec: codec}
}

var exportHeaders = []string{"Name", "Amount", "Category", "Type", "Date", "Check #", "Note"}

// exportRows loads a balance and renders its transactions as string rows,
// newest first, amounts formatted for display.
func (h *ExportHandler) exportRows(id int64) (*models.Balance, [][]string, error) {
	b, err := h.Store.Balance(id)
	if err != nil {
		return nil, nil, err
	}
	cats, err := h.Store.Categories()
	if err != nil {
		return nil, nil, err
	}
	names := make(map[int64]*models.Category, len(cats))
	for i := range cats {
		names[cats[i].UniqueID] = &cats[i]
	}

	rows := make([][]string, 0, len(b.Transactions))
	for _, t := range b.Transactions {
		catName, typeText := "", "debit"
		if cat, ok := names[t.CategoryID]; ok {
			catName = cat.Name
			if cat.IsCredit {
				typeText = "credit"
			}
		}
		check := ""
		if t.CheckNumber != models.NoCheckNumber {
			check = fmt.Sprintf("%d", t.CheckNumber)
		}
		rows = append(rows, []string{
			t.Name,
			h.Codec.Format(t.Amount, true),
			catName,
			typeText,
			t.Timestamp.Format("2006-01-02"),
			check,
			t.Note,
		})
	}
	return b, rows, nil
}

// ExportCSV streams a balance's ledger as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	_, rows, err := h.exportRows(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"balance_%s.csv\"", uuid.New().String()))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so spreadsheet apps pick up currency symbols.
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write(row)
	}
}

// ExportXLSX streams a balance's ledger as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, rows, err := h.exportRows(id)
	if err != nil {
		writeError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := b.Name
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for idx, row := range rows {
		for i, val := range row {
			cell := fmt.Sprintf("%c%d", 'A'+i, idx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 10)
	f.SetColWidth(sheetName, "G", "G", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"balance_%s.xlsx\"", uuid.New().String()))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
