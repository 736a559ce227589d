package entity

import "time"

// Profile shares its primary key with the owning Account. Rows are created
// lazily on first fetch, so a missing row is a normal state.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	FullName  string    `json:"fullName" gorm:"type:varchar(255)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	AvatarURL string    `json:"avatarUrl" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Account Account `json:"-" gorm:"foreignKey:ID;references:ID"`
}
