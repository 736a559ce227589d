package usecase

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-rental-app/dto/req"
	"room-rental-app/entity"
	"room-rental-app/repository"
	"room-rental-app/storage"
)

func TestGetPublicRoomsExcludesUnavailable(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	env.createRoom(t, owner.ID, nil)
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.Title = "Hidden listing here"
		room.IsAvailable = false
	})

	rooms, err := env.roomUsecase().GetPublicRooms(testCtx(), req.RoomFilters{})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.True(t, rooms[0].IsAvailable)
}

func TestGetPublicRoomsFiltersAreANDed(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.City = "Mumbai"
		room.RentPrice = 25000
		room.PropertyType = "2 BHK"
	})
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.Title = "Budget stay in Mumbai"
		room.City = "Mumbai"
		room.RentPrice = 8000
		room.PropertyType = "1 Bed"
	})
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.Title = "Pune city residence"
		room.City = "Pune"
		room.RentPrice = 25000
		room.PropertyType = "2 BHK"
	})

	uc := env.roomUsecase()

	rooms, err := uc.GetPublicRooms(testCtx(), req.RoomFilters{City: "mumbai", MinPrice: 10000})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Mumbai", rooms[0].City)
	assert.Equal(t, float64(25000), rooms[0].RentPrice)

	// substring match on city is case-insensitive
	rooms, err = uc.GetPublicRooms(testCtx(), req.RoomFilters{City: "UMBA"})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	rooms, err = uc.GetPublicRooms(testCtx(), req.RoomFilters{PropertyType: "2 BHK", MaxPrice: 30000})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestGetPublicRoomsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	first := env.createRoom(t, owner.ID, nil)
	time.Sleep(5 * time.Millisecond)
	second := env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.Title = "Newer listing posted"
	})

	rooms, err := env.roomUsecase().GetPublicRooms(testCtx(), req.RoomFilters{})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, second.ID, rooms[0].ID)
	assert.Equal(t, first.ID, rooms[1].ID)
}

func TestPublicProjectionHasNoContactNumber(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	env.createRoom(t, owner.ID, nil)

	rooms, err := env.roomUsecase().GetPublicRooms(testCtx(), req.RoomFilters{})
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	payload, err := json.Marshal(rooms[0])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "contactNumber")
	assert.NotContains(t, string(payload), "9876543210")
}

func TestGetRoomsByOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	other := env.createAccount(t, "other@example.com", "Other")
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.IsAvailable = false
	})
	env.createRoom(t, other.ID, func(room *entity.Room) {
		room.Title = "Someone else's room"
	})

	rooms, err := env.roomUsecase().GetRoomsByOwner(testCtx(), owner.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	// the owner projection includes unavailable rooms and the contact number
	assert.False(t, rooms[0].IsAvailable)
	assert.Equal(t, "9876543210", rooms[0].ContactNumber)
}

func TestGetRoomsByOwnerEmptyIDIssuesNoQuery(t *testing.T) {
	// a nil DB would panic on any query; an empty id must short-circuit
	uc := NewRoomUsecase(repository.NewRoomRepository(), validator.New(), nil, newTestLogger(), nil, nil, nil)

	rooms, err := uc.GetRoomsByOwner(testCtx(), "")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestGetRoomContactRequiresAuthentication(t *testing.T) {
	// unauthenticated lookups must be rejected before any backend call; the
	// nil DB guarantees a query would panic
	uc := NewRoomUsecase(repository.NewRoomRepository(), validator.New(), nil, newTestLogger(), nil, nil, nil)

	_, err := uc.GetRoomContact(testCtx(), "some-room", false)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGetRoomContactAuthenticated(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	room := env.createRoom(t, owner.ID, nil)

	number, err := env.roomUsecase().GetRoomContact(testCtx(), room.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", number)
}

func TestGetAvailableCities(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	env.createRoom(t, owner.ID, func(room *entity.Room) { room.City = "Bengaluru" })
	env.createRoom(t, owner.ID, func(room *entity.Room) { room.City = "Bengaluru" })
	env.createRoom(t, owner.ID, func(room *entity.Room) { room.City = "Chennai" })
	env.createRoom(t, owner.ID, func(room *entity.Room) {
		room.City = "Chennai"
		room.IsAvailable = false
	})

	cities, err := env.roomUsecase().GetAvailableCities(testCtx())
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Bengaluru", cities[0].City)
	assert.Equal(t, int64(2), cities[0].RoomCount)
	assert.Equal(t, "Chennai", cities[1].City)
	assert.Equal(t, int64(1), cities[1].RoomCount)
}

func TestCreateRoomRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	uc := env.roomUsecase()

	created, err := uc.CreateRoom(testCtx(), owner.ID, &req.CreateRoomRequest{
		Title:         "Spacious studio flat",
		Description:   "Close to the metro",
		Location:      "MG Road",
		City:          "Bengaluru",
		RentPrice:     15000,
		PropertyType:  "Studio",
		ContactNumber: "9876543210",
		Images:        []string{"https://example.com/a.jpg"},
	})
	require.NoError(t, err)
	// defaults applied when omitted
	assert.Equal(t, "Any", created.TenantPreference)
	assert.True(t, created.IsAvailable)

	rooms, err := uc.GetRoomsByOwner(testCtx(), owner.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, created.ID, rooms[0].ID)
	assert.Equal(t, "Spacious studio flat", rooms[0].Title)
	assert.Equal(t, "Close to the metro", rooms[0].Description)
	assert.Equal(t, float64(15000), rooms[0].RentPrice)
	assert.Equal(t, "Studio", rooms[0].PropertyType)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, rooms[0].Images)
	assert.Equal(t, "9876543210", rooms[0].ContactNumber)
}

func TestCreateRoomValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	uc := env.roomUsecase()

	_, err := uc.CreateRoom(testCtx(), owner.ID, &req.CreateRoomRequest{
		Title:         "tiny",
		Location:      "MG Road",
		City:          "Bengaluru",
		RentPrice:     15000,
		PropertyType:  "Studio",
		ContactNumber: "9876543210",
	})
	require.Error(t, err)

	rooms, err := uc.GetRoomsByOwner(testCtx(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestUpdateRoomOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	intruder := env.createAccount(t, "intruder@example.com", "Intruder")
	room := env.createRoom(t, owner.ID, nil)
	uc := env.roomUsecase()

	newPrice := float64(20000)
	_, err := uc.UpdateRoom(testCtx(), intruder.ID, room.ID, &req.UpdateRoomRequest{RentPrice: &newPrice})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := uc.UpdateRoom(testCtx(), owner.ID, room.ID, &req.UpdateRoomRequest{RentPrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newPrice, updated.RentPrice)
	// untouched fields survive the partial update
	assert.Equal(t, room.Title, updated.Title)
	assert.Equal(t, room.ContactNumber, updated.ContactNumber)
}

func TestDeleteRoomOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createAccount(t, "owner@example.com", "Owner")
	intruder := env.createAccount(t, "intruder@example.com", "Intruder")
	room := env.createRoom(t, owner.ID, nil)
	uc := env.roomUsecase()

	assert.ErrorIs(t, uc.DeleteRoom(testCtx(), intruder.ID, room.ID), ErrForbidden)

	require.NoError(t, uc.DeleteRoom(testCtx(), owner.ID, room.ID))
	rooms, err := uc.GetRoomsByOwner(testCtx(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestUploadImagesRejectsOversizedBatch(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	images, err := storage.NewImageStore(dir, "/room-images", env.log)
	require.NoError(t, err)
	uc := NewRoomUsecase(repository.NewRoomRepository(), validator.New(), env.db, env.log, env.feed, env.cache, images)

	files := make([]storage.File, 6)
	for i := range files {
		files[i] = storage.File{Name: "photo.jpg", Content: strings.NewReader("jpeg bytes")}
	}

	_, err = uc.UploadImages(testCtx(), files)
	require.ErrorIs(t, err, ErrTooManyImages)
	assert.Contains(t, err.Error(), "maximum of 5")

	// rejected before any file reached the store
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImagesStoresBatch(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	images, err := storage.NewImageStore(dir, "/room-images", env.log)
	require.NoError(t, err)
	uc := NewRoomUsecase(repository.NewRoomRepository(), validator.New(), env.db, env.log, env.feed, env.cache, images)

	urls, err := uc.UploadImages(testCtx(), []storage.File{
		{Name: "front.jpg", Content: strings.NewReader("front")},
		{Name: "back.png", Content: strings.NewReader("back")},
	})
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasSuffix(urls[0], ".jpg"))
	assert.True(t, strings.HasSuffix(urls[1], ".png"))
}
