package repository

import (
	"context"

	"gorm.io/gorm"

	"room-rental-app/entity"
)

type ProfileRepository struct {
	Repository[entity.Profile]
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// FindByUserID returns gorm.ErrRecordNotFound untouched; the caller decides
// whether a missing profile is a failure or the lazy-create path.
func (repository ProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.WithContext(ctx).Where("id = ?", userID).Take(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
