package public

import (
	"errors"
	"strconv"

	"github.com/stride-next/internal/http/response"
	"github.com/stride-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest 购物车项数量更新请求
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.ListByUser(uid)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load cart")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotAvailable):
			response.BadRequest(c, "product not available")
		case errors.Is(err, service.ErrSizeNotOffered):
			response.BadRequest(c, "size not offered")
		case errors.Is(err, service.ErrColorNotOffered):
			response.BadRequest(c, "color not offered")
		case errors.Is(err, service.ErrInvalidCartItem):
			response.BadRequest(c, "invalid cart item")
		default:
			response.Error(c, response.CodeInternal, "failed to add cart item")
		}
		return
	}

	summary, err := h.CartService.ListByUser(uid)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load cart")
		return
	}
	response.Success(c, summary)
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.CartService.UpdateQuantity(uid, uint(itemID), *req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "cart item not found")
		case errors.Is(err, service.ErrInvalidCartItem):
			response.BadRequest(c, "invalid cart item")
		default:
			response.Error(c, response.CodeInternal, "failed to update cart item")
		}
		return
	}

	summary, err := h.CartService.ListByUser(uid)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to load cart")
		return
	}
	response.Success(c, summary)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "cart item not found")
		case errors.Is(err, service.ErrInvalidCartItem):
			response.BadRequest(c, "invalid cart item")
		default:
			response.Error(c, response.CodeInternal, "failed to remove cart item")
		}
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		response.Error(c, response.CodeInternal, "failed to clear cart")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
