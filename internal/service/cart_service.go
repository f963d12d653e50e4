package service

import (
	"strings"
	"time"

	"github.com/stride-next/internal/models"
	"github.com/stride-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	UnitPrice models.Money    `json:"unit_price"`
	Subtotal  models.Money    `json:"subtotal"`
	Product   *models.Product `json:"product,omitempty"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items     []CartItemDetail `json:"items"`
	Total     models.Money     `json:"total"`      // 各行 单价×数量 之和，缺失商品按 0 计
	ItemCount int              `json:"item_count"` // 各行数量之和
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Size      string
	Color     string
	Quantity  int
}

// CartService 购物车服务
// 购物车是用户会话的权威存储：同一 (商品, 尺码, 颜色) 的重复加购
// 走更新路径合并数量，数量归零即删除。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车汇总
func (s *CartService) ListByUser(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return buildCartSummary(items), nil
}

// AddItem 加购（同款合并数量）
// 若 (商品, 尺码, 颜色) 已在购物车中，进入更新路径累加数量；否则新建行。
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 {
		return ErrInvalidCartItem
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	size := strings.TrimSpace(input.Size)
	color := strings.TrimSpace(input.Color)
	if size == "" {
		return ErrSizeNotOffered
	}
	if color == "" {
		return ErrColorNotOffered
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	if !product.Sizes.Contains(size) {
		return ErrSizeNotOffered
	}
	if !product.Colors.Contains(color) {
		return ErrColorNotOffered
	}

	existing, err := s.cartRepo.GetByVariant(input.UserID, input.ProductID, size, color)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.UpdateQuantity(input.UserID, existing.ID, existing.Quantity+input.Quantity)
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Size:      size,
		Color:     color,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		// 并发窗口下另一端先插入了同款行：唯一索引拒绝后改走合并路径。
		merged, mergeErr := s.cartRepo.GetByVariant(input.UserID, input.ProductID, size, color)
		if mergeErr != nil || merged == nil {
			return err
		}
		return s.UpdateQuantity(input.UserID, merged.ID, merged.Quantity+input.Quantity)
	}
	return nil
}

// UpdateQuantity 更新购物车项数量
// 数量 <= 0 时委托删除，购物车中不存在数量为零的行。
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if userID == 0 || itemID == 0 {
		return ErrInvalidCartItem
	}
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.cartRepo.UpdateQuantity(item.ID, quantity)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, itemID uint) error {
	if userID == 0 || itemID == 0 {
		return ErrInvalidCartItem
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.cartRepo.Delete(item.ID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userID)
}

// buildCartSummary 汇总购物车行：总额与件数为派生值。
func buildCartSummary(items []models.CartItem) *CartSummary {
	details := make([]CartItemDetail, 0, len(items))
	total := decimal.Zero
	itemCount := 0
	for _, item := range items {
		unitPrice := decimal.Zero
		if item.Product != nil {
			unitPrice = item.Product.Price.Decimal
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		itemCount += item.Quantity

		details = append(details, CartItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			UnitPrice: models.NewMoneyFromDecimal(unitPrice),
			Subtotal:  models.NewMoneyFromDecimal(subtotal),
			Product:   item.Product,
		})
	}
	return &CartSummary{
		Items:     details,
		Total:     models.NewMoneyFromDecimal(total),
		ItemCount: itemCount,
	}
}
