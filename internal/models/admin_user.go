package models

import "time"

// AdminUser is an operator of the admin console. Bot end users are Accounts
// and never log in here.
type AdminUser struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null;default:'admin'"`
	Version   int    `gorm:"default:1"`
}
