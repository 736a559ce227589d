package repository

import (
	"context"

	"gorm.io/gorm"

	"room-rental-app/entity"
	"room-rental-app/enum"
)

type InquiryRepository struct {
	Repository[entity.Inquiry]
}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{}
}

func (repository InquiryRepository) FindByCustomer(ctx context.Context, db *gorm.DB, customerID string) ([]entity.Inquiry, error) {
	var inquiries []entity.Inquiry
	err := db.WithContext(ctx).
		Preload("Room").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (repository InquiryRepository) FindByRoomIDs(ctx context.Context, db *gorm.DB, roomIDs []string) ([]entity.Inquiry, error) {
	var inquiries []entity.Inquiry
	err := db.WithContext(ctx).
		Preload("Room").
		Where("room_id IN ?", roomIDs).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

// UpdateStatus touches only the status column and returns the reloaded row.
// Setting an inquiry to the status it already has is a no-op, not an error.
func (repository InquiryRepository) UpdateStatus(ctx context.Context, db *gorm.DB, inquiryID string, status enum.InquiryStatus) (*entity.Inquiry, error) {
	if err := db.WithContext(ctx).
		Model(&entity.Inquiry{}).
		Where("id = ?", inquiryID).
		Update("status", status).Error; err != nil {
		return nil, err
	}

	var inquiry entity.Inquiry
	if err := db.WithContext(ctx).
		Preload("Room").
		Where("id = ?", inquiryID).
		Take(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}
