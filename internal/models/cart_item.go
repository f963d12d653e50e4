package models

import (
	"time"
)

// CartItem 购物车项
// (user_id, product_id, size, color) 组合唯一，重复加购通过合并数量实现，
// 唯一索引兜底并发窗口下的重复插入。购物车行是临时数据，删除为物理删除。
type CartItem struct {
	ID        uint        `gorm:"primarykey" json:"id"`                                             // 主键
	UserID    uint        `gorm:"not null;uniqueIndex:idx_cart_line" json:"user_id"`                // 用户ID
	ProductID uint        `gorm:"not null;uniqueIndex:idx_cart_line" json:"product_id"`             // 商品ID
	Size      string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_line" json:"size"`  // 尺码
	Color     string      `gorm:"type:varchar(30);not null;uniqueIndex:idx_cart_line" json:"color"` // 颜色
	Quantity  int         `gorm:"not null" json:"quantity"`                                         // 数量（始终 >= 1）
	CreatedAt time.Time   `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt time.Time   `gorm:"index" json:"updated_at"`                                          // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
