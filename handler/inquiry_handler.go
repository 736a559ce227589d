package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/prometheus"
	"room-rental-app/usecase"
)

type InquiryHandler struct {
	usecase.InquiryUsecase
	*logrus.Logger
}

func NewInquiryHandler(inquiryUsecase usecase.InquiryUsecase, logger *logrus.Logger) *InquiryHandler {
	return &InquiryHandler{InquiryUsecase: inquiryUsecase, Logger: logger}
}

func (handler *InquiryHandler) GetMyInquiries(c *fiber.Ctx) error {
	inquiries, err := handler.InquiryUsecase.GetMyInquiries(c.Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.InquiryResponse]{
		Message:    "Successfully fetched inquiries",
		StatusCode: fiber.StatusOK,
		Data:       inquiries,
	})
}

func (handler *InquiryHandler) GetManagerInquiries(c *fiber.Ctx) error {
	inquiries, err := handler.InquiryUsecase.GetManagerInquiries(c.Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.InquiryResponse]{
		Message:    "Successfully fetched manager inquiries",
		StatusCode: fiber.StatusOK,
		Data:       inquiries,
	})
}

func (handler *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	request := new(req.CreateInquiryRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	inquiry, err := handler.InquiryUsecase.CreateInquiry(c.Context(), currentUserID(c), request)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.InquiryOperationsCounter.WithLabelValues("create").Inc()
	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.InquiryResponse]{
		Message:    "Successfully created inquiry",
		StatusCode: fiber.StatusCreated,
		Data:       inquiry,
	})
}

func (handler *InquiryHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	request := new(req.UpdateInquiryStatusRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	inquiry, err := handler.InquiryUsecase.UpdateInquiryStatus(c.Context(), c.Params("inquiryId"), request)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.InquiryOperationsCounter.WithLabelValues("status").Inc()
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.InquiryResponse]{
		Message:    "Successfully updated inquiry status",
		StatusCode: fiber.StatusOK,
		Data:       inquiry,
	})
}
