package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/prometheus"
	"room-rental-app/storage"
	"room-rental-app/usecase"
)

type RoomHandler struct {
	usecase.RoomUsecase
	*logrus.Logger
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{RoomUsecase: roomUsecase, Logger: logger}
}

func (handler *RoomHandler) GetPublicRooms(c *fiber.Ctx) error {
	filters := req.RoomFilters{}
	if err := c.QueryParser(&filters); err != nil {
		return writeError(c, err)
	}

	rooms, err := handler.RoomUsecase.GetPublicRooms(c.Context(), filters)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.PublicRoomResponse]{
		Message:    "Successfully fetched rooms",
		StatusCode: fiber.StatusOK,
		Data:       rooms,
	})
}

func (handler *RoomHandler) GetMyRooms(c *fiber.Ctx) error {
	rooms, err := handler.RoomUsecase.GetRoomsByOwner(c.Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.RoomResponse]{
		Message:    "Successfully fetched owned rooms",
		StatusCode: fiber.StatusOK,
		Data:       rooms,
	})
}

func (handler *RoomHandler) GetRoomContact(c *fiber.Ctx) error {
	authenticated := currentUserID(c) != ""
	number, err := handler.RoomUsecase.GetRoomContact(c.Context(), c.Params("roomId"), authenticated)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[string]{
		Message:    "Successfully fetched contact",
		StatusCode: fiber.StatusOK,
		Data:       number,
	})
}

func (handler *RoomHandler) GetAvailableCities(c *fiber.Ctx) error {
	cities, err := handler.RoomUsecase.GetAvailableCities(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.CityCountResponse]{
		Message:    "Successfully fetched cities",
		StatusCode: fiber.StatusOK,
		Data:       cities,
	})
}

func (handler *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	request := new(req.CreateRoomRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	room, err := handler.RoomUsecase.CreateRoom(c.Context(), currentUserID(c), request)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RoomOperationsCounter.WithLabelValues("create").Inc()
	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.RoomResponse]{
		Message:    "Successfully created room",
		StatusCode: fiber.StatusCreated,
		Data:       room,
	})
}

func (handler *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	request := new(req.UpdateRoomRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	room, err := handler.RoomUsecase.UpdateRoom(c.Context(), currentUserID(c), c.Params("roomId"), request)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RoomOperationsCounter.WithLabelValues("update").Inc()
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.RoomResponse]{
		Message:    "Successfully updated room",
		StatusCode: fiber.StatusOK,
		Data:       room,
	})
}

func (handler *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	if err := handler.RoomUsecase.DeleteRoom(c.Context(), currentUserID(c), c.Params("roomId")); err != nil {
		return writeError(c, err)
	}

	prometheus.RoomOperationsCounter.WithLabelValues("delete").Inc()
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[string]{
		Message:    "Successfully deleted room",
		StatusCode: fiber.StatusOK,
		Data:       c.Params("roomId"),
	})
}

func (handler *RoomHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, err)
	}

	headers := form.File["images"]
	files := make([]storage.File, 0, len(headers))
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, file := range opened {
			_ = file.Close()
		}
	}()

	for _, header := range headers {
		content, err := header.Open()
		if err != nil {
			return writeError(c, err)
		}
		opened = append(opened, content)
		files = append(files, storage.File{Name: header.Filename, Content: content})
	}

	urls, err := handler.RoomUsecase.UploadImages(c.Context(), files)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RoomOperationsCounter.WithLabelValues("upload").Inc()
	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[[]string]{
		Message:    "Successfully uploaded images",
		StatusCode: fiber.StatusCreated,
		Data:       urls,
	})
}
