package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"room-rental-app/changefeed"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/entity"
	"room-rental-app/enum"
	"room-rental-app/livequery"
	"room-rental-app/repository"
	"room-rental-app/storage"
)

type RoomUsecaseImpl struct {
	*repository.RoomRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Feed   *changefeed.Feed
	Cache  *livequery.Cache
	Images *storage.ImageStore
}

func NewRoomUsecase(roomRepository *repository.RoomRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, feed *changefeed.Feed, cache *livequery.Cache, images *storage.ImageStore) RoomUsecase {
	return &RoomUsecaseImpl{
		RoomRepository: roomRepository,
		Validate:       validate,
		DB:             DB,
		Logger:         logger,
		Feed:           feed,
		Cache:          cache,
		Images:         images,
	}
}

func (uc *RoomUsecaseImpl) GetPublicRooms(ctx context.Context, filters req.RoomFilters) ([]res.PublicRoomResponse, error) {
	rooms, err := uc.RoomRepository.FindPublic(ctx, uc.DB, filters)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list public rooms")
		return nil, err
	}

	responses := make([]res.PublicRoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, res.NewPublicRoomResponse(&rooms[i]))
	}
	return responses, nil
}

func (uc *RoomUsecaseImpl) GetRoomsByOwner(ctx context.Context, ownerID string) ([]res.RoomResponse, error) {
	if ownerID == "" {
		return []res.RoomResponse{}, nil
	}

	rooms, err := uc.RoomRepository.FindByOwner(ctx, uc.DB, ownerID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list rooms for owner %s", ownerID)
		return nil, err
	}

	responses := make([]res.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, res.NewRoomResponse(&rooms[i]))
	}
	return responses, nil
}

func (uc *RoomUsecaseImpl) GetRoomContact(ctx context.Context, roomID string, authenticated bool) (string, error) {
	if !authenticated {
		return "", ErrUnauthenticated
	}
	if roomID == "" {
		return "", gorm.ErrRecordNotFound
	}

	number, err := uc.RoomRepository.FindContactNumber(ctx, uc.DB, roomID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to fetch contact for room %s", roomID)
		return "", err
	}
	return number, nil
}

func (uc *RoomUsecaseImpl) GetAvailableCities(ctx context.Context) ([]res.CityCountResponse, error) {
	counts, err := uc.RoomRepository.CountByCity(ctx, uc.DB)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to aggregate cities")
		return nil, err
	}

	responses := make([]res.CityCountResponse, 0, len(counts))
	for _, count := range counts {
		responses = append(responses, res.CityCountResponse{
			City:      count.City,
			RoomCount: count.RoomCount,
		})
	}
	return responses, nil
}

func (uc *RoomUsecaseImpl) CreateRoom(ctx context.Context, ownerID string, request *req.CreateRoomRequest) (res.RoomResponse, error) {
	if ownerID == "" {
		return res.RoomResponse{}, ErrUnauthenticated
	}
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate room request")
		return res.RoomResponse{}, err
	}

	tenantPreference := enum.TenantPreference(request.TenantPreference)
	if tenantPreference == "" {
		tenantPreference = enum.TenantPreferenceAny
	}
	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	room := &entity.Room{
		OwnerID:          ownerID,
		Title:            request.Title,
		Description:      request.Description,
		Location:         request.Location,
		City:             request.City,
		RentPrice:        request.RentPrice,
		PropertyType:     enum.PropertyType(request.PropertyType),
		TenantPreference: tenantPreference,
		ContactNumber:    request.ContactNumber,
		Images:           entity.ImageList(request.Images),
		IsAvailable:      isAvailable,
	}

	if err := uc.RoomRepository.Save(ctx, uc.DB, room); err != nil {
		uc.Logger.WithError(err).Error("failed to save room")
		return res.RoomResponse{}, err
	}

	uc.invalidateRoomViews()
	uc.Feed.Publish(changefeed.TableRooms, changefeed.ActionInsert, room.ID, map[string]string{
		"owner_id": ownerID,
	})

	uc.Logger.Infof("room %s created by %s", room.ID, ownerID)
	return res.NewRoomResponse(room), nil
}

func (uc *RoomUsecaseImpl) UpdateRoom(ctx context.Context, ownerID, roomID string, request *req.UpdateRoomRequest) (res.RoomResponse, error) {
	if ownerID == "" {
		return res.RoomResponse{}, ErrUnauthenticated
	}
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate room update")
		return res.RoomResponse{}, err
	}

	if err := uc.checkOwnership(ctx, ownerID, roomID); err != nil {
		return res.RoomResponse{}, err
	}

	values := map[string]interface{}{}
	if request.Title != nil {
		values["title"] = *request.Title
	}
	if request.Description != nil {
		values["description"] = *request.Description
	}
	if request.Location != nil {
		values["location"] = *request.Location
	}
	if request.City != nil {
		values["city"] = *request.City
	}
	if request.RentPrice != nil {
		values["rent_price"] = *request.RentPrice
	}
	if request.PropertyType != nil {
		values["property_type"] = *request.PropertyType
	}
	if request.TenantPreference != nil {
		values["tenant_preference"] = *request.TenantPreference
	}
	if request.ContactNumber != nil {
		values["contact_number"] = *request.ContactNumber
	}
	if request.Images != nil {
		values["images"] = entity.ImageList(request.Images)
	}
	if request.IsAvailable != nil {
		values["is_available"] = *request.IsAvailable
	}

	if len(values) == 0 {
		var room entity.Room
		if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, roomID); err != nil {
			return res.RoomResponse{}, err
		}
		return res.NewRoomResponse(&room), nil
	}

	room, err := uc.RoomRepository.PartialUpdate(ctx, uc.DB, roomID, values)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to update room %s", roomID)
		return res.RoomResponse{}, err
	}

	uc.invalidateRoomViews()
	uc.Feed.Publish(changefeed.TableRooms, changefeed.ActionUpdate, roomID, map[string]string{
		"owner_id": ownerID,
	})
	return res.NewRoomResponse(room), nil
}

func (uc *RoomUsecaseImpl) DeleteRoom(ctx context.Context, ownerID, roomID string) error {
	if ownerID == "" {
		return ErrUnauthenticated
	}
	if err := uc.checkOwnership(ctx, ownerID, roomID); err != nil {
		return err
	}

	room := entity.Room{BaseEntity: entity.BaseEntity{ID: roomID}}
	if err := uc.RoomRepository.Delete(ctx, uc.DB, &room); err != nil {
		uc.Logger.WithError(err).Errorf("failed to delete room %s", roomID)
		return err
	}

	uc.invalidateRoomViews()
	uc.Feed.Publish(changefeed.TableRooms, changefeed.ActionDelete, roomID, map[string]string{
		"owner_id": ownerID,
	})
	uc.Logger.Infof("room %s deleted by %s", roomID, ownerID)
	return nil
}

func (uc *RoomUsecaseImpl) UploadImages(ctx context.Context, files []storage.File) ([]string, error) {
	if len(files) > req.MaxRoomImages {
		return nil, ErrTooManyImages
	}
	return uc.Images.SaveAll(files)
}

// checkOwnership is the row-level access policy of the rooms table: only the
// owner may mutate.
func (uc *RoomUsecaseImpl) checkOwnership(ctx context.Context, ownerID, roomID string) error {
	var room entity.Room
	if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		uc.Logger.WithError(err).Errorf("failed to load room %s", roomID)
		return err
	}
	if room.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}

// A room mutation touches every view derived from room state: the public
// catalog, every owner list, the city aggregate, and manager inquiry views.
func (uc *RoomUsecaseImpl) invalidateRoomViews() {
	uc.Cache.Invalidate(KeyRooms, KeyMyRooms, KeyAvailableCities, KeyManagerInquiries)
}
