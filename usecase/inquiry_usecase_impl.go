package usecase

import (
	"context"

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
)

type InquiryUsecaseImpl struct {
	*repository.InquiryRepository
	*repository.RoomRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Feed  *changefeed.Feed
	Cache *livequery.Cache
}

func NewInquiryUsecase(inquiryRepository *repository.InquiryRepository, roomRepository *repository.RoomRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, feed *changefeed.Feed, cache *livequery.Cache) InquiryUsecase {
	return &InquiryUsecaseImpl{
		InquiryRepository: inquiryRepository,
		RoomRepository:    roomRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
		Feed:              feed,
		Cache:             cache,
	}
}

func (uc *InquiryUsecaseImpl) GetMyInquiries(ctx context.Context, customerID string) ([]res.InquiryResponse, error) {
	if customerID == "" {
		return []res.InquiryResponse{}, nil
	}

	inquiries, err := uc.InquiryRepository.FindByCustomer(ctx, uc.DB, customerID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list inquiries for customer %s", customerID)
		return nil, err
	}
	return uc.toResponses(inquiries), nil
}

func (uc *InquiryUsecaseImpl) GetManagerInquiries(ctx context.Context, managerID string) ([]res.InquiryResponse, error) {
	if managerID == "" {
		return []res.InquiryResponse{}, nil
	}

	roomIDs, err := uc.RoomRepository.FindIDsByOwner(ctx, uc.DB, managerID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to resolve rooms for manager %s", managerID)
		return nil, err
	}
	if len(roomIDs) == 0 {
		return []res.InquiryResponse{}, nil
	}

	inquiries, err := uc.InquiryRepository.FindByRoomIDs(ctx, uc.DB, roomIDs)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to list inquiries for manager %s", managerID)
		return nil, err
	}
	return uc.toResponses(inquiries), nil
}

func (uc *InquiryUsecaseImpl) CreateInquiry(ctx context.Context, customerID string, request *req.CreateInquiryRequest) (res.InquiryResponse, error) {
	if customerID == "" {
		return res.InquiryResponse{}, ErrUnauthenticated
	}
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate inquiry request")
		return res.InquiryResponse{}, err
	}

	// the inquiry must reference an existing room
	var room entity.Room
	if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, request.RoomID); err != nil {
		uc.Logger.WithError(err).Errorf("failed to load room %s for inquiry", request.RoomID)
		return res.InquiryResponse{}, err
	}

	inquiry := &entity.Inquiry{
		RoomID:        request.RoomID,
		CustomerID:    customerID,
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		Message:       request.Message,
		Status:        enum.InquiryStatusPending,
	}
	if err := uc.InquiryRepository.Save(ctx, uc.DB, inquiry); err != nil {
		uc.Logger.WithError(err).Error("failed to save inquiry")
		return res.InquiryResponse{}, err
	}
	inquiry.Room = room

	uc.Cache.Invalidate(livequery.Key(KeyMyInquiries, customerID), KeyManagerInquiries, KeyRooms)
	uc.Feed.Publish(changefeed.TableInquiries, changefeed.ActionInsert, inquiry.ID, map[string]string{
		"customer_id": customerID,
	})

	uc.Logger.Infof("inquiry %s created for room %s", inquiry.ID, request.RoomID)
	return res.NewInquiryResponse(inquiry), nil
}

func (uc *InquiryUsecaseImpl) UpdateInquiryStatus(ctx context.Context, inquiryID string, request *req.UpdateInquiryStatusRequest) (res.InquiryResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate status update")
		return res.InquiryResponse{}, err
	}

	inquiry, err := uc.InquiryRepository.UpdateStatus(ctx, uc.DB, inquiryID, enum.InquiryStatus(request.Status))
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to update status of inquiry %s", inquiryID)
		return res.InquiryResponse{}, err
	}

	// status is visible to both sides
	uc.Cache.Invalidate(KeyManagerInquiries, KeyMyInquiries)
	uc.Feed.Publish(changefeed.TableInquiries, changefeed.ActionUpdate, inquiry.ID, map[string]string{
		"customer_id": inquiry.CustomerID,
	})
	return res.NewInquiryResponse(inquiry), nil
}

func (uc *InquiryUsecaseImpl) toResponses(inquiries []entity.Inquiry) []res.InquiryResponse {
	responses := make([]res.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		responses = append(responses, res.NewInquiryResponse(&inquiries[i]))
	}
	return responses
}
