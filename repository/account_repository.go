package repository

import (
	"context"

	"gorm.io/gorm"

	"room-rental-app/entity"
)

type AccountRepository struct {
	Repository[entity.Account]
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (repository AccountRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (entity.Account, error) {
	account := &entity.Account{}
	err := db.WithContext(ctx).Where("email = ?", email).First(account).Error
	if err != nil {
		return *account, err
	}
	return *account, err
}
