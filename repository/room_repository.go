package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"room-rental-app/dto/req"
	"room-rental-app/entity"
)

type RoomRepository struct {
	Repository[entity.Room]
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// CityCount is one row of the available-cities aggregate.
type CityCount struct {
	City      string
	RoomCount int64
}

// FindPublic returns available rooms matching every present filter,
// newest-first. An absent filter field imposes no constraint.
func (repository RoomRepository) FindPublic(ctx context.Context, db *gorm.DB, filters req.RoomFilters) ([]entity.Room, error) {
	query := db.WithContext(ctx).
		Model(&entity.Room{}).
		Where("is_available = ?", true)

	if filters.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filters.City)+"%")
	}
	if filters.MinPrice > 0 {
		query = query.Where("rent_price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice > 0 {
		query = query.Where("rent_price <= ?", filters.MaxPrice)
	}
	if filters.PropertyType != "" {
		query = query.Where("property_type = ?", filters.PropertyType)
	}
	if filters.TenantPreference != "" {
		query = query.Where("tenant_preference = ?", filters.TenantPreference)
	}

	var rooms []entity.Room
	err := query.Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (repository RoomRepository) FindByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (repository RoomRepository) FindIDsByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&entity.Room{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// FindContactNumber is the only read path that touches the contact column.
func (repository RoomRepository) FindContactNumber(ctx context.Context, db *gorm.DB, roomID string) (string, error) {
	var room entity.Room
	err := db.WithContext(ctx).
		Select("contact_number").
		Where("id = ?", roomID).
		Take(&room).Error
	if err != nil {
		return "", err
	}
	return room.ContactNumber, nil
}

func (repository RoomRepository) CountByCity(ctx context.Context, db *gorm.DB) ([]CityCount, error) {
	var counts []CityCount
	err := db.WithContext(ctx).
		Model(&entity.Room{}).
		Select("city, COUNT(*) AS room_count").
		Where("is_available = ?", true).
		Group("city").
		Order("city ASC").
		Scan(&counts).Error
	return counts, err
}

// PartialUpdate applies only the given columns and returns the reloaded row.
func (repository RoomRepository) PartialUpdate(ctx context.Context, db *gorm.DB, roomID string, values map[string]interface{}) (*entity.Room, error) {
	if err := db.WithContext(ctx).
		Model(&entity.Room{}).
		Where("id = ?", roomID).
		Updates(values).Error; err != nil {
		return nil, err
	}

	var room entity.Room
	if err := repository.FindById(ctx, db, &room, roomID); err != nil {
		return nil, err
	}
	return &room, nil
}
