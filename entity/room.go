package entity

import "room-rental-app/enum"

type Room struct {
	BaseEntity
	OwnerID          string                `json:"ownerId" gorm:"type:varchar(255);index;not null"`
	Title            string                `json:"title" gorm:"type:varchar(255);not null"`
	Description      string                `json:"description" gorm:"type:text"`
	Location         string                `json:"location" gorm:"type:varchar(255);not null"`
	City             string                `json:"city" gorm:"type:varchar(100);index;not null"`
	RentPrice        float64               `json:"rentPrice" gorm:"not null"`
	PropertyType     enum.PropertyType     `json:"propertyType" gorm:"type:varchar(10);not null"`
	TenantPreference enum.TenantPreference `json:"tenantPreference" gorm:"type:varchar(30);default:'Any'"`
	ContactNumber    string                `json:"contactNumber" gorm:"type:varchar(20);not null"`
	Images           ImageList             `json:"images" gorm:"type:text"`
	IsAvailable      bool                  `json:"isAvailable" gorm:"default:true"`

	Owner     Account   `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	Inquiries []Inquiry `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}
