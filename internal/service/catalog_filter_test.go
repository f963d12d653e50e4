package service

import (
	"testing"
	"time"

	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/models"

	"github.com/shopspring/decimal"
)

func sampleProducts() []models.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID: 1, Name: "Air Max 270 React", Description: "Premium running shoes",
			Price: models.NewMoneyFromInt(12999), Category: "running",
			Gender: constants.GenderUnisex, Sport: "running",
			Colors: models.StringArray{"black", "white"}, Sizes: models.StringArray{"7", "8", "9"},
			CreatedAt: base.AddDate(0, 0, 3),
		},
		{
			ID: 2, Name: "UltraBoost 22", Description: "Energy-returning running shoes",
			Price: models.NewMoneyFromInt(16999), Category: "running",
			Gender: constants.GenderMen, Sport: "running",
			Colors: models.StringArray{"blue", "white"}, Sizes: models.StringArray{"8", "9", "10"},
			CreatedAt: base.AddDate(0, 0, 9),
		},
		{
			ID: 3, Name: "Chuck Taylor All Star", Description: "Timeless lifestyle sneakers",
			Price: models.NewMoneyFromInt(4999), Category: "lifestyle",
			Gender: constants.GenderUnisex, Sport: "lifestyle",
			Colors: models.StringArray{"black", "red"}, Sizes: models.StringArray{"6", "7"},
			CreatedAt: base.AddDate(0, 0, 1),
		},
		{
			ID: 4, Name: "Free Run 5.0", Description: "Flexible running shoes",
			Price: models.NewMoneyFromInt(9999), Category: "running",
			Gender: constants.GenderWomen, Sport: "running",
			Colors: models.StringArray{"purple", "white"}, Sizes: models.StringArray{"6", "7", "8"},
			CreatedAt: base.AddDate(0, 0, 6),
		},
	}
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProductsNoFiltersReturnsAll(t *testing.T) {
	products := sampleProducts()
	got := FilterProducts(products, DefaultFilters(), "")
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
}

func TestFilterProductsIsSubsetAndPreservesOrder(t *testing.T) {
	products := sampleProducts()
	filters := DefaultFilters()
	filters.Genders = []string{constants.GenderMen, constants.GenderWomen}

	got := FilterProducts(products, filters, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	ids := productIDs(got)
	if ids[0] != 2 || ids[1] != 4 {
		t.Fatalf("expected ids [2 4] in input order, got %v", ids)
	}
	for _, p := range got {
		if !filters.Matches(p) {
			t.Fatalf("product %d does not satisfy filters", p.ID)
		}
	}
}

func TestFilterProductsIdempotent(t *testing.T) {
	products := sampleProducts()
	filters := DefaultFilters()
	filters.Sports = []string{"running"}
	filters.Colors = []string{"white"}

	once := FilterProducts(products, filters, "")
	twice := FilterProducts(once, filters, "")
	if len(once) != len(twice) {
		t.Fatalf("filtering is not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("idempotent filtering changed order at %d", i)
		}
	}
}

func TestFilterProductsColorIntersection(t *testing.T) {
	products := sampleProducts()
	filters := DefaultFilters()
	filters.Colors = []string{"red", "purple"}

	got := FilterProducts(products, filters, "")
	ids := productIDs(got)
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 4 {
		t.Fatalf("expected ids [3 4], got %v", ids)
	}
}

func TestFilterProductsPriceRangeInclusive(t *testing.T) {
	products := sampleProducts()
	filters := DefaultFilters()
	filters.PriceMin = decimal.NewFromInt(4999)
	filters.PriceMax = decimal.NewFromInt(12999)

	got := FilterProducts(products, filters, "")
	for _, p := range got {
		if p.Price.LessThan(filters.PriceMin) || p.Price.GreaterThan(filters.PriceMax) {
			t.Fatalf("product %d price %s outside inclusive range", p.ID, p.Price.String())
		}
	}
	ids := productIDs(got)
	if len(ids) != 3 {
		t.Fatalf("expected 3 products on boundary-inclusive range, got %v", ids)
	}
}

func TestFilterProductsSearchAfterFilters(t *testing.T) {
	products := sampleProducts()
	filters := DefaultFilters()
	filters.Sports = []string{"running"}

	got := FilterProducts(products, filters, "ULTRA")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only UltraBoost, got %v", productIDs(got))
	}

	// 检索词命中描述与分类字段
	got = FilterProducts(products, DefaultFilters(), "lifestyle")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only Chuck Taylor, got %v", productIDs(got))
	}
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	originalIDs := productIDs(products)

	FilterProducts(products, DefaultFilters(), "running")

	for i, p := range products {
		if p.ID != originalIDs[i] {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}

func TestSortProductsPriceLowAndHighAreReverses(t *testing.T) {
	low := sampleProducts()
	SortProducts(low, constants.SortByPriceLow)
	for i := 1; i < len(low); i++ {
		if low[i-1].Price.GreaterThan(low[i].Price.Decimal) {
			t.Fatalf("price-low not ascending at %d", i)
		}
	}

	high := sampleProducts()
	SortProducts(high, constants.SortByPriceHigh)
	for i := range high {
		if high[i].ID != low[len(low)-1-i].ID {
			t.Fatalf("price-high is not the reverse of price-low at %d", i)
		}
	}
}

func TestSortProductsNewestByCreatedAt(t *testing.T) {
	products := sampleProducts()
	SortProducts(products, constants.SortByNewest)
	for i := 1; i < len(products); i++ {
		if products[i-1].CreatedAt.Before(products[i].CreatedAt) {
			t.Fatalf("newest sort not descending at %d", i)
		}
	}
}

func TestSortProductsDefaultByNameCaseInsensitive(t *testing.T) {
	products := sampleProducts()
	SortProducts(products, "bogus")
	want := []uint{1, 3, 4, 2}
	ids := productIDs(products)
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected name order %v, got %v", want, ids)
		}
	}
}
