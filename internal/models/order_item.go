package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 下单时快照商品名称与单价，后续商品变动不影响历史订单。
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID uint           `gorm:"index;not null" json:"product_id"`                        // 商品ID
	Name      string         `gorm:"not null" json:"name"`                                    // 商品名称快照
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价快照
	Quantity  int            `gorm:"not null" json:"quantity"`                                // 数量
	Size      string         `gorm:"type:varchar(10);not null" json:"size"`                   // 尺码
	Color     string         `gorm:"type:varchar(30);not null" json:"color"`                  // 颜色
	CreatedAt time.Time      `json:"created_at"`                                              // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
