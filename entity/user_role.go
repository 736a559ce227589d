package entity

import "room-rental-app/enum"

// UserRole holds at most one row per user. Absence of a row means the role is
// unknown, not customer and not manager.
type UserRole struct {
	BaseEntity
	UserID string    `json:"userId" gorm:"type:varchar(255);uniqueIndex;not null"`
	Role   enum.Role `json:"role" gorm:"type:varchar(10);not null"`

	Account Account `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
