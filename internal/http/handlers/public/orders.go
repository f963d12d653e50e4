package public

import (
	"errors"

	"github.com/stride-next/internal/http/response"
	"github.com/stride-next/internal/repository"
	"github.com/stride-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderStatusUpdateRequest 履约回调状态更新请求
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout 购物车结算
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Checkout(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			response.BadRequest(c, "cart is empty")
		case errors.Is(err, service.ErrProductNotAvailable):
			response.BadRequest(c, "product not available")
		default:
			response.Error(c, response.CodeInternal, "checkout failed")
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	filter := repository.OrderListFilter{
		UserID:   uid,
		Status:   c.Query("status"),
		Page:     parseIntParam(c, "page", 1),
		PageSize: parseIntParam(c, "page_size", 20),
	}
	orders, total, err := h.OrderService.ListByUser(filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			response.BadRequest(c, "invalid order status")
			return
		}
		response.Error(c, response.CodeInternal, "failed to list orders")
		return
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      filter.Page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder 用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to get order")
		return
	}
	response.Success(c, gin.H{"order": order})
}

// UpdateOrderStatus 履约系统回调：更新订单状态
// 调用方身份由路由层的共享密钥中间件校验。
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.UpdateStatus(c.Param("order_no"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			response.BadRequest(c, "invalid order status")
		default:
			response.Error(c, response.CodeInternal, "failed to update order status")
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}
