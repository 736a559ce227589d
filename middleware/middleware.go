package middleware

import (
	"strconv"
	"time"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"room-rental-app/config/common"
	"room-rental-app/dto/res"
	"room-rental-app/enum"
	"room-rental-app/prometheus"
	"room-rental-app/security"
	"room-rental-app/usecase"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log      *logrus.Logger
	Profiles usecase.ProfileUsecase
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger, profiles usecase.ProfileUsecase) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger, Profiles: profiles}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	authorization := c.Get("Authorization")
	if len(authorization) < 8 {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Missing bearer token",
		})
	}

	token := authorization[7:]
	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract user ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Failed to extract user ID from token",
		})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

// RequireRole classifies the request only after both the session and the
// role lookup have resolved: a missing session never reaches the role query,
// and an unknown role is redirected to the neutral page instead of being
// treated as either concrete role.
func (middleware *Middleware) RequireRole(required enum.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		role, err := middleware.Profiles.ResolveRole(c.Context(), userID)
		if err != nil {
			middleware.Log.WithError(err).Errorf("failed to resolve role for %s", userID)
			return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
				Status:     fiber.ErrInternalServerError.Message,
				StatusCode: fiber.StatusInternalServerError,
				Error:      "Failed to resolve role",
			})
		}

		switch role {
		case required:
			c.Locals("role", role)
			return c.Next()
		case enum.RoleUnknown, enum.RoleCustomer, enum.RoleManager:
			middleware.Log.Warnf("user %s with role %s denied %s route", userID, role, required)
			return c.Redirect("/home", fiber.StatusSeeOther)
		default:
			return c.Redirect("/home", fiber.StatusSeeOther)
		}
	}
}

// Metrics records request counts and latency per route.
func (middleware *Middleware) Metrics(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	duration := time.Since(start).Seconds()
	method := c.Method()
	path := c.Route().Path
	status := strconv.Itoa(c.Response().StatusCode())

	prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	prometheus.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

	return err
}
