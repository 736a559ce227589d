package entity

type Account struct {
	BaseEntity
	Email    string `json:"email" gorm:"unique;type:varchar(100)"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	FullName string `json:"fullName" gorm:"type:varchar(255)"`
}
