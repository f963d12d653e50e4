package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/logger"
	"github.com/stride-next/internal/models"
	"github.com/stride-next/internal/queue"
	"github.com/stride-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// Checkout 购物车结算
// 单事务内完成：按购物车行生成订单与订单项（名称与单价快照）、
// 清空购物车。任一步失败整体回滚，购物车保持原样。
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	now := time.Now()
	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			return nil, ErrProductNotAvailable
		}
		unitPrice := item.Product.Price.Decimal
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			UnitPrice: models.NewMoneyFromDecimal(unitPrice),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			CreatedAt: now,
		})
	}

	order := &models.Order{
		OrderNo:   generateOrderNo(),
		UserID:    userID,
		Status:    constants.OrderStatusPending,
		Total:     models.NewMoneyFromDecimal(total),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = orderItems

	s.enqueueStatusEmail(order.ID, order.OrderNo, order.Status)
	return order, nil
}

// ListByUser 获取用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrNotFound
	}
	if filter.Status != "" && !constants.IsValidOrderStatus(filter.Status) {
		return nil, 0, ErrInvalidOrderStatus
	}
	return s.orderRepo.ListByUser(filter)
}

// GetByOrderNo 获取用户订单详情
func (s *OrderService) GetByOrderNo(orderNo string, userID uint) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" || userID == 0 {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus 更新订单状态（履约系统回调）
// 按目标状态补记对应时间戳，并推送状态变更邮件。
func (s *OrderService) UpdateStatus(orderNo, status string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrNotFound
	}
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.Status == status {
		return order, nil
	}

	now := time.Now()
	updates := map[string]interface{}{"updated_at": now}
	switch status {
	case constants.OrderStatusShipped:
		updates["shipped_at"] = now
	case constants.OrderStatusDelivered:
		updates["delivered_at"] = now
	case constants.OrderStatusCancelled:
		updates["canceled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status, updates); err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = now
	switch status {
	case constants.OrderStatusShipped:
		order.ShippedAt = &now
	case constants.OrderStatusDelivered:
		order.DeliveredAt = &now
	case constants.OrderStatusCancelled:
		order.CanceledAt = &now
	}

	s.enqueueStatusEmail(order.ID, order.OrderNo, status)
	return order, nil
}

// enqueueStatusEmail 推送订单状态邮件，失败仅记日志不阻断主流程。
func (s *OrderService) enqueueStatusEmail(orderID uint, orderNo, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  status,
	})
	if err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_no", orderNo,
			"status", status,
			"error", err,
		)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("SN%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(n.String())
	}
	return b.String()
}
