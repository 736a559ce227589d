package entity

import "room-rental-app/enum"

type Inquiry struct {
	BaseEntity
	RoomID        string             `json:"roomId" gorm:"type:varchar(255);index;not null"`
	CustomerID    string             `json:"customerId" gorm:"type:varchar(255);index;not null"`
	CustomerName  string             `json:"customerName" gorm:"type:varchar(255);not null"`
	CustomerEmail string             `json:"customerEmail" gorm:"type:varchar(100);not null"`
	CustomerPhone string             `json:"customerPhone" gorm:"type:varchar(20)"`
	Message       string             `json:"message" gorm:"type:text;not null"`
	Status        enum.InquiryStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`

	Room     Room    `json:"-" gorm:"foreignKey:RoomID;references:ID"`
	Customer Account `json:"-" gorm:"foreignKey:CustomerID;references:ID"`
}
