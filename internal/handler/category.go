package handler

import (
	"net/http"

	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/models"
	"github.com/bkromhout/balances/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	Store *data.Store
}

func NewCategoryHandler(store *data.Store) *CategoryHandler {
	return &CategoryHandler{Store: store}
}

type categoryReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	IsCredit bool   `json:"is_credit"`
}

type categoryResp struct {
	UniqueID int64  `json:"unique_id"`
	Name     string `json:"name"`
	IsCredit bool   `json:"is_credit"`
}

func toCategoryResp(cat *models.Category) categoryResp {
	return categoryResp{
		UniqueID: cat.UniqueID,
		Name:     cat.Name,
		IsCredit: cat.IsCredit,
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	cat, err := h.Store.CreateCategory(req.Name, req.IsCredit)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"category": toCategoryResp(cat)})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.Store.Categories()
	if err != nil {
		writeError(c, err)
		return
	}
	resps := make([]categoryResp, 0, len(cats))
	for i := range cats {
		resps = append(resps, toCategoryResp(&cats[i]))
	}
	util.Success(c, util.Response{"categories": resps})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	cat, err := h.Store.UpdateCategory(id, req.Name, req.IsCredit)
	if err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"category": toCategoryResp(cat)})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteCategory(id); err != nil {
		writeError(c, err)
		return
	}
	util.Success(c, util.Response{"deleted": id})
}
