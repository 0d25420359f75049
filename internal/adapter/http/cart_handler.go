package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type CartHandler struct {
	ops *usecase.CartOps
}

func NewCartHandler(ops *usecase.CartOps) *CartHandler {
	return &CartHandler{ops: ops}
}

func (h *CartHandler) Create(c *gin.Context) {
	c.JSON(http.StatusCreated, toCartViewResp(h.ops.Create()))
}

func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.ops.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
		return
	}
	c.JSON(http.StatusOK, toCartViewResp(view))
}

type addItemReq struct {
	ProductID int64 `json:"productId" binding:"required"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	out, err := h.ops.AddUnit(c.Param("id"), entity.ProductID(req.ProductID))
	if err != nil {
		h.writeCartErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    toCartViewResp(out.View),
		"message": out.Message,
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := entity.ParseProductID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_product_id"})
		return
	}

	out, err := h.ops.RemoveOneUnit(c.Param("id"), id)
	switch {
	case errors.Is(err, entity.ErrItemNotInCart):
		// No such unit in the cart: a no-op, not a failure. The view is
		// still fresh and the caller keeps rendering it.
		c.JSON(http.StatusOK, gin.H{
			"cart":    toCartViewResp(out.View),
			"error":   "item_not_in_cart",
			"removed": 0,
		})
		return
	case err != nil:
		h.writeCartErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    toCartViewResp(out.View),
		"message": out.Message,
		"removed": out.Removed,
	})
}

func (h *CartHandler) RemoveItemAll(c *gin.Context) {
	id, err := entity.ParseProductID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_product_id"})
		return
	}

	out, err := h.ops.RemoveAllUnits(c.Param("id"), id)
	if err != nil {
		h.writeCartErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    toCartViewResp(out.View),
		"message": out.Message,
		"removed": out.Removed,
	})
}

func (h *CartHandler) Clear(c *gin.Context) {
	out, err := h.ops.Clear(c.Param("id"))
	if err != nil {
		h.writeCartErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    toCartViewResp(out.View),
		"message": out.Message,
		"cleared": out.Removed,
	})
}

func (h *CartHandler) writeCartErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
	case errors.Is(err, entity.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
