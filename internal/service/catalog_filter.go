package service

import (
	"sort"
	"strings"

	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/models"

	"github.com/shopspring/decimal"
)

// Filters 商品结构化过滤条件
// 多选字段内部为 OR，字段之间为 AND；空集合表示不过滤。
type Filters struct {
	Genders  []string
	Sports   []string
	Colors   []string
	Sizes    []string
	PriceMin decimal.Decimal // 价格区间下限（含）
	PriceMax decimal.Decimal // 价格区间上限（含）
	SortBy   string
}

// DefaultFilters 返回默认过滤条件（不限人群/运动/颜色/尺码，全价格区间，按名称排序）
func DefaultFilters() Filters {
	return Filters{
		PriceMin: decimal.Zero,
		PriceMax: decimal.NewFromInt(constants.CatalogPriceRangeMax),
		SortBy:   constants.SortByName,
	}
}

// Matches 判断单个商品是否满足全部非空过滤条件
func (f Filters) Matches(p models.Product) bool {
	if len(f.Genders) > 0 && !containsString(f.Genders, p.Gender) {
		return false
	}
	if len(f.Sports) > 0 && !containsString(f.Sports, p.Sport) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(f.Colors, p.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Sizes) {
		return false
	}
	if p.Price.LessThan(f.PriceMin) {
		return false
	}
	if f.PriceMax.GreaterThan(decimal.Zero) && p.Price.GreaterThan(f.PriceMax) {
		return false
	}
	return true
}

// FilterProducts 过滤管道：结构化条件先行，自由文本检索随后。
// 纯函数，返回 products 的有序子集；输入不被修改。
func FilterProducts(products []models.Product, filters Filters, query string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filters.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return filtered
	}
	searched := filtered[:0]
	for _, p := range filtered {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			searched = append(searched, p)
		}
	}
	return searched
}

// SortProducts 按 sortBy 对商品做稳定排序（原地）。
// 未识别的 sortBy 按名称排序处理。
func SortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case constants.SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price.Decimal)
		})
	case constants.SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price.Decimal)
		})
	case constants.SortByNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case constants.SortByName:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func intersects(selected []string, offered models.StringArray) bool {
	for _, s := range selected {
		if offered.Contains(s) {
			return true
		}
	}
	return false
}
