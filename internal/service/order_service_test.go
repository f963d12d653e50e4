package service

import (
	"errors"
	"testing"

	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderServiceForTest(t *testing.T, name string) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, name)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartSvc := NewCartService(cartRepo, productRepo)
	orderSvc := NewOrderService(orderRepo, cartRepo, productRepo, nil)
	return orderSvc, cartSvc, db
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	orderSvc, cartSvc, db := newOrderServiceForTest(t, "order_checkout")
	shoes := createTestProduct(t, db, "Air Max 270 React", 12999)
	boost := createTestProduct(t, db, "UltraBoost 22", 16999)
	userID := uint(1)

	if err := cartSvc.AddItem(AddCartItemInput{UserID: userID, ProductID: shoes.ID, Size: "9", Color: "black", Quantity: 2}); err != nil {
		t.Fatalf("add shoes failed: %v", err)
	}
	if err := cartSvc.AddItem(AddCartItemInput{UserID: userID, ProductID: boost.ID, Size: "10", Color: "white", Quantity: 1}); err != nil {
		t.Fatalf("add boost failed: %v", err)
	}

	order, err := orderSvc.Checkout(userID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.OrderNo == "" {
		t.Fatalf("expected generated order no")
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	wantTotal := decimal.NewFromInt(2*12999 + 16999)
	if !order.Total.Equal(wantTotal) {
		t.Fatalf("expected total %s, got %s", wantTotal.String(), order.Total.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.Name == "" || item.UnitPrice.IsZero() {
			t.Fatalf("order item missing name or unit price snapshot: %+v", item)
		}
	}

	// 结算后购物车为空
	summary, err := cartSvc.ListByUser(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("expected cleared cart after checkout, got %d lines", len(summary.Items))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orderSvc, _, _ := newOrderServiceForTest(t, "order_empty")
	_, err := orderSvc.Checkout(1)
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	orderSvc, cartSvc, db := newOrderServiceForTest(t, "order_snapshot")
	shoes := createTestProduct(t, db, "Air Max 270 React", 12999)
	userID := uint(1)

	if err := cartSvc.AddItem(AddCartItemInput{UserID: userID, ProductID: shoes.ID, Size: "9", Color: "black", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderSvc.Checkout(userID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// 改价后再读订单，快照价不变
	if err := db.Model(shoes).Update("price", "9999").Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	fetched, err := orderSvc.GetByOrderNo(order.OrderNo, userID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !fetched.Items[0].UnitPrice.Equal(decimal.NewFromInt(12999)) {
		t.Fatalf("expected snapshot price 12999, got %s", fetched.Items[0].UnitPrice.String())
	}
}

func TestGetByOrderNoScopedToUser(t *testing.T) {
	orderSvc, cartSvc, db := newOrderServiceForTest(t, "order_scope")
	shoes := createTestProduct(t, db, "Air Max 270 React", 12999)

	if err := cartSvc.AddItem(AddCartItemInput{UserID: 1, ProductID: shoes.ID, Size: "9", Color: "black", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderSvc.Checkout(1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderSvc.GetByOrderNo(order.OrderNo, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
}

func TestUpdateStatusSetsTimestamps(t *testing.T) {
	orderSvc, cartSvc, db := newOrderServiceForTest(t, "order_status")
	shoes := createTestProduct(t, db, "Air Max 270 React", 12999)

	if err := cartSvc.AddItem(AddCartItemInput{UserID: 1, ProductID: shoes.ID, Size: "9", Color: "black", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderSvc.Checkout(1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	updated, err := orderSvc.UpdateStatus(order.OrderNo, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped status, got %s", updated.Status)
	}
	if updated.ShippedAt == nil {
		t.Fatalf("expected shipped_at to be set")
	}

	if _, err := orderSvc.UpdateStatus(order.OrderNo, "teleported"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}
