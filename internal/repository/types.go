package repository

// ProductListFilter 查询商品列表的过滤条件
// 集合类条件（颜色/尺码）存储为 JSON 数组列，交集判断在 service 层的
// 纯过滤管道内完成，这里只负责可下推到 SQL 的粗过滤。
type ProductListFilter struct {
	Gender     string
	Sport      string
	Category   string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
