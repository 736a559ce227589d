package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/enum"
	"room-rental-app/usecase"
)

type UserHandler struct {
	usecase.ProfileUsecase
	*logrus.Logger
}

func NewUserHandler(profileUsecase usecase.ProfileUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{ProfileUsecase: profileUsecase, Logger: logger}
}

func (handler *UserHandler) GetProfile(c *fiber.Ctx) error {
	response, err := handler.ProfileUsecase.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.ProfileResponse]{
		Message:    "Successfully fetched profile",
		StatusCode: fiber.StatusOK,
		Data:       response,
	})
}

func (handler *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	request := new(req.EditProfileRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	response, err := handler.ProfileUsecase.UpdateProfile(c.Context(), currentUserID(c), request)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.ProfileResponse]{
		Message:    "Successfully updated profile",
		StatusCode: fiber.StatusOK,
		Data:       response,
	})
}

func (handler *UserHandler) GetRole(c *fiber.Ctx) error {
	role, err := handler.ProfileUsecase.ResolveRole(c.Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[string]{
		Message:    "Successfully resolved role",
		StatusCode: fiber.StatusOK,
		Data:       role.String(),
	})
}

func (handler *UserHandler) AssignRole(c *fiber.Ctx) error {
	request := new(struct {
		Role string `json:"role"`
	})
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	role := enum.ParseRole(request.Role)
	if err := handler.ProfileUsecase.AssignRole(c.Context(), currentUserID(c), role); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[string]{
		Message:    "Successfully assigned role",
		StatusCode: fiber.StatusCreated,
		Data:       role.String(),
	})
}
