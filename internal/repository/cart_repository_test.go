package repository

import (
	"fmt"
	"testing"

	"github.com/stride-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCartRepoForTest(t *testing.T, name string) *GormCartRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartItem{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db)
}

func TestCartRepoGetByVariant(t *testing.T) {
	repo := newCartRepoForTest(t, "cartrepo_variant")

	item, err := repo.GetByVariant(1, 10, "9", "black")
	if err != nil {
		t.Fatalf("get by variant failed: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for missing variant, got %+v", item)
	}

	created := &models.CartItem{UserID: 1, ProductID: 10, Size: "9", Color: "black", Quantity: 2}
	if err := repo.Create(created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	item, err = repo.GetByVariant(1, 10, "9", "black")
	if err != nil {
		t.Fatalf("get by variant failed: %v", err)
	}
	if item == nil || item.Quantity != 2 {
		t.Fatalf("expected stored variant with quantity 2, got %+v", item)
	}

	// 不同尺码视为另一行
	item, err = repo.GetByVariant(1, 10, "10", "black")
	if err != nil {
		t.Fatalf("get by variant failed: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for different size, got %+v", item)
	}
}

func TestCartRepoUniqueIndexRejectsDuplicateVariant(t *testing.T) {
	repo := newCartRepoForTest(t, "cartrepo_unique")

	first := &models.CartItem{UserID: 1, ProductID: 10, Size: "9", Color: "black", Quantity: 1}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	duplicate := &models.CartItem{UserID: 1, ProductID: 10, Size: "9", Color: "black", Quantity: 1}
	if err := repo.Create(duplicate); err == nil {
		t.Fatalf("expected unique index violation for duplicate variant")
	}
}

func TestCartRepoClearByUserScoped(t *testing.T) {
	repo := newCartRepoForTest(t, "cartrepo_clear")

	if err := repo.Create(&models.CartItem{UserID: 1, ProductID: 10, Size: "9", Color: "black", Quantity: 1}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(&models.CartItem{UserID: 2, ProductID: 10, Size: "9", Color: "black", Quantity: 1}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.ClearByUser(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	mine, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected cleared cart for user 1, got %d items", len(mine))
	}

	theirs, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(theirs) != 1 {
		t.Fatalf("expected user 2 cart untouched, got %d items", len(theirs))
	}
}
