package usecase

import (
	"context"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/storage"
)

type RoomUsecase interface {
	// GetPublicRooms returns available rooms only, projected without contact
	// numbers, newest-first.
	GetPublicRooms(ctx context.Context, filters req.RoomFilters) ([]res.PublicRoomResponse, error)
	// GetRoomsByOwner returns every room of the owner, contact number
	// included. An empty id yields an empty result without a query.
	GetRoomsByOwner(ctx context.Context, ownerID string) ([]res.RoomResponse, error)
	// GetRoomContact is the privileged contact lookup; nothing is issued to
	// the database unless authenticated is true.
	GetRoomContact(ctx context.Context, roomID string, authenticated bool) (string, error)
	GetAvailableCities(ctx context.Context) ([]res.CityCountResponse, error)
	CreateRoom(ctx context.Context, ownerID string, request *req.CreateRoomRequest) (res.RoomResponse, error)
	UpdateRoom(ctx context.Context, ownerID, roomID string, request *req.UpdateRoomRequest) (res.RoomResponse, error)
	DeleteRoom(ctx context.Context, ownerID, roomID string) error
	// UploadImages stores at most req.MaxRoomImages files and returns their
	// public URLs in input order; the first failure aborts the batch.
	UploadImages(ctx context.Context, files []storage.File) ([]string, error)
}
