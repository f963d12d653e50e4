package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
// 商品由外部目录系统维护，API 侧只读。
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name          string         `gorm:"not null;index" json:"name"`                         // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                       // 商品描述
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 售价
	OriginalPrice *Money         `gorm:"type:decimal(20,2)" json:"original_price,omitempty"` // 原价（有值且高于售价时为折扣商品）
	Images        StringArray    `gorm:"type:json" json:"images"`                            // 图片数组（有序）
	Category      string         `gorm:"type:varchar(50);not null;index" json:"category"`    // 分类
	Gender        string         `gorm:"type:varchar(10);not null;index" json:"gender"`      // 适用人群（men/women/kids/unisex）
	Sport         string         `gorm:"type:varchar(50);not null;index" json:"sport"`       // 运动类型
	Colors        StringArray    `gorm:"type:json" json:"colors"`                            // 可选颜色
	Sizes         StringArray    `gorm:"type:json" json:"sizes"`                             // 可选尺码
	IsNew         bool           `gorm:"default:false" json:"is_new"`                        // 新品标记
	IsTrending    bool           `gorm:"default:false" json:"is_trending"`                   // 热卖标记
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                // 是否上架
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// HasDiscount 判断是否为折扣商品
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price.Decimal)
}
