package usecase

import (
	"context"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
)

type InquiryUsecase interface {
	GetMyInquiries(ctx context.Context, customerID string) ([]res.InquiryResponse, error)
	// GetManagerInquiries resolves the manager's room ids first; a manager
	// with zero rooms gets an empty result without an inquiry-table query.
	GetManagerInquiries(ctx context.Context, managerID string) ([]res.InquiryResponse, error)
	CreateInquiry(ctx context.Context, customerID string, request *req.CreateInquiryRequest) (res.InquiryResponse, error)
	UpdateInquiryStatus(ctx context.Context, inquiryID string, request *req.UpdateInquiryStatusRequest) (res.InquiryResponse, error)
}
