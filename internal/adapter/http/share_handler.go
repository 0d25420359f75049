package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/entity"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/share"
	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

type ShareHandler struct {
	share *usecase.Share
}

func NewShareHandler(s *usecase.Share) *ShareHandler {
	return &ShareHandler{share: s}
}

type shareReq struct {
	Destination string `json:"destination"`
}

type shareResp struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ShareCart builds the cart-summary inquiry and its wa.me link.
func (h *ShareHandler) ShareCart(c *gin.Context) {
	var req shareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	out, err := h.share.Cart(c.Param("id"), req.Destination)
	if err != nil {
		h.writeShareErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shareResp{Message: out.Message, Link: out.Link})
}

// ShareProduct builds a single-product inquiry and its wa.me link.
func (h *ShareHandler) ShareProduct(c *gin.Context) {
	id, err := entity.ParseProductID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_product_id"})
		return
	}

	var req shareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	out, err := h.share.Product(id, req.Destination)
	if err != nil {
		h.writeShareErr(c, err)
		return
	}
	c.JSON(http.StatusOK, shareResp{Message: out.Message, Link: out.Link})
}

func (h *ShareHandler) writeShareErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, share.ErrEmptyDestination):
		// Surfaced to the user as a warning toast; the share is aborted.
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_destination", "warning": "Masukkan nomor WhatsApp terlebih dahulu!"})
	case errors.Is(err, usecase.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
	case errors.Is(err, entity.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
