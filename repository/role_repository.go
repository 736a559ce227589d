package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"room-rental-app/entity"
	"room-rental-app/enum"
)

type RoleRepository struct {
	Repository[entity.UserRole]
}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{}
}

// FindByUserID resolves the zero-or-one role row of a user. No row is a
// legitimate state and maps to RoleUnknown without error; every other failure
// propagates.
func (repository RoleRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (enum.Role, error) {
	var userRole entity.UserRole
	err := db.WithContext(ctx).Where("user_id = ?", userID).Take(&userRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return enum.RoleUnknown, nil
	}
	if err != nil {
		return enum.RoleUnknown, err
	}
	return userRole.Role, nil
}
