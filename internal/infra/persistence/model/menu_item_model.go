package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"type:varchar(50);index"`
	IsAvailable bool            `gorm:"not null;default:true"`
	BranchID    uint            `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Branch *BranchModel `gorm:"foreignKey:BranchID"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
