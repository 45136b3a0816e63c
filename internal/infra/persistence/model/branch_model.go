// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// BranchModel mirrors the 'branches' table.
type BranchModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Address   string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BranchModel) TableName() string {
	return "branches"
}
