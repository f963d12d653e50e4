package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
// 订单在结算时创建，创建后除状态外不可变；状态由外部履约系统推进。
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                // 主键
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                // 订单编号
	UserID      uint           `gorm:"index;not null" json:"user_id"`                       // 用户ID
	Status      string         `gorm:"index;not null" json:"status"`                        // 订单状态
	Total       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`  // 订单总额（= 各订单项小计之和）
	ShippedAt   *time.Time     `json:"shipped_at,omitempty"`                                // 发货时间
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`                              // 送达时间
	CanceledAt  *time.Time     `json:"canceled_at,omitempty"`                               // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
