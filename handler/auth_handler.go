package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/prometheus"
	"room-rental-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	request := new(req.RegisterRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	response, err := handler.AuthUsecase.RegisterUser(c.Context(), request)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.RegisterResponse]{
		Message:    "Successfully registered",
		StatusCode: fiber.StatusCreated,
		Data:       response,
	})
}

func (handler *AuthHandler) LoginUser(c *fiber.Ctx) error {
	prometheus.AuthAttemptsCounter.Inc()

	request := new(req.LoginRequest)
	if err := c.BodyParser(request); err != nil {
		return writeError(c, err)
	}

	response, err := handler.AuthUsecase.LoginUser(c.Context(), request)
	if err != nil {
		prometheus.AuthErrorsCounter.Inc()
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully logged in",
		StatusCode: fiber.StatusOK,
		Data:       response,
	})
}
