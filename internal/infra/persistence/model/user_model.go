package model

import "time"

// UserModel mirrors the 'users' table. BranchID is nullable: customers and
// branch-agnostic management carry NULL while branch staff carry their branch.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(30);not null;index"`
	BranchID     *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Branch *BranchModel `gorm:"foreignKey:BranchID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
