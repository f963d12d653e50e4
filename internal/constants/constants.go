package constants

// 商品适用人群
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderKids   = "kids"
	GenderUnisex = "unisex"
)

// Genders 合法的人群取值
var Genders = []string{GenderMen, GenderWomen, GenderKids, GenderUnisex}

// 商品排序方式
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByNewest    = "newest"
)

// 订单状态
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses 合法的订单状态集合
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskOrderStatusEmail = "order:status_email"
)

// CatalogPriceRangeMax 目录默认价格区间上限
const CatalogPriceRangeMax = 20000

// IsValidGender 判断人群取值是否合法
func IsValidGender(gender string) bool {
	for _, g := range Genders {
		if g == gender {
			return true
		}
	}
	return false
}

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
