package model

import "time"

// InventoryItemModel mirrors the 'inventory_items' table. A CHECK constraint
// keeps quantity non-negative so concurrent adjustments cannot oversell.
type InventoryItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Quantity  int    `gorm:"not null;check:quantity >= 0"`
	Unit      string `gorm:"type:varchar(20);not null"`
	Threshold int    `gorm:"not null;default:0"`
	BranchID  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Branch *BranchModel `gorm:"foreignKey:BranchID"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}
