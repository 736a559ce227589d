package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"room-rental-app/enum"
	"room-rental-app/handler"
	"room-rental-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.RoomHandler
	*handler.InquiryHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
	rc.GetManagerRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	rc.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)

	// the public catalog needs no session and never exposes contact numbers
	app.Get("/rooms", rc.RoomHandler.GetPublicRooms)
	app.Get("/rooms/cities", rc.RoomHandler.GetAvailableCities)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID)

	app.Get("/auth/me", rc.UserHandler.GetProfile)
	app.Put("/auth/me", rc.UserHandler.UpdateProfile)
	app.Get("/auth/role", rc.UserHandler.GetRole)
	app.Post("/auth/role", rc.UserHandler.AssignRole)

	app.Get("/rooms/:roomId/contact", rc.RoomHandler.GetRoomContact)

	app.Get("/my/inquiries", rc.InquiryHandler.GetMyInquiries)
	app.Post("/inquiries", rc.InquiryHandler.CreateInquiry)
}

func (rc *ConfigRoute) GetManagerRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID, rc.Middleware.RequireRole(enum.RoleManager))

	app.Get("/my/rooms", rc.RoomHandler.GetMyRooms)
	app.Post("/rooms", rc.RoomHandler.CreateRoom)
	app.Put("/rooms/:roomId", rc.RoomHandler.UpdateRoom)
	app.Delete("/rooms/:roomId", rc.RoomHandler.DeleteRoom)
	app.Post("/rooms/images", rc.RoomHandler.UploadImages)

	app.Get("/manager/inquiries", rc.InquiryHandler.GetManagerInquiries)
	app.Put("/inquiries/:inquiryId/status", rc.InquiryHandler.UpdateInquiryStatus)
}

func (rc *ConfigRoute) GetWebSocketRoute(feedHandler *handler.ChangeFeedHandler) {
	rc.App.Use("/ws/feed", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws/feed", websocket.New(feedHandler.HandleFeed))
}
