package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-rental-app/dto/req"
	"room-rental-app/entity"
	"room-rental-app/repository"
)

func newInquiryRequest(roomID string) *req.CreateInquiryRequest {
	return &req.CreateInquiryRequest{
		RoomID:        roomID,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9988776655",
		Message:       "Is the room still available from next month?",
	}
}

func TestCreateInquiryRequiresAuthentication(t *testing.T) {
	// the nil DB guarantees any backend call would panic
	uc := NewInquiryUsecase(repository.NewInquiryRepository(), repository.NewRoomRepository(), validator.New(), nil, newTestLogger(), nil, nil)

	_, err := uc.CreateInquiry(testCtx(), "", newInquiryRequest("some-room"))
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateInquiryVisibleToBothSides(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createAccount(t, "manager@example.com", "Manager")
	customer := env.createAccount(t, "customer@example.com", "Customer")
	room := env.createRoom(t, manager.ID, nil)
	uc := env.inquiryUsecase()

	created, err := uc.CreateInquiry(testCtx(), customer.ID, newInquiryRequest(room.ID))
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, room.Title, created.RoomTitle)

	mine, err := uc.GetMyInquiries(testCtx(), customer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
	assert.Equal(t, "Asha Rao", mine[0].CustomerName)

	managed, err := uc.GetManagerInquiries(testCtx(), manager.ID)
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, created.ID, managed[0].ID)
	assert.Equal(t, room.Title, managed[0].RoomTitle)

	// a manager with different rooms sees nothing
	other := env.createAccount(t, "other@example.com", "Other")
	env.createRoom(t, other.ID, func(r *entity.Room) { r.Title = "Unrelated property" })
	unrelated, err := uc.GetManagerInquiries(testCtx(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, unrelated)
}

func TestCreateInquiryValidation(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createAccount(t, "manager@example.com", "Manager")
	customer := env.createAccount(t, "customer@example.com", "Customer")
	room := env.createRoom(t, manager.ID, nil)
	uc := env.inquiryUsecase()

	request := newInquiryRequest(room.ID)
	request.Message = "too short"
	_, err := uc.CreateInquiry(testCtx(), customer.ID, request)
	require.Error(t, err)

	mine, err := uc.GetMyInquiries(testCtx(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCreateInquiryRejectsMissingRoom(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createAccount(t, "customer@example.com", "Customer")

	_, err := env.inquiryUsecase().CreateInquiry(testCtx(), customer.ID, newInquiryRequest("no-such-room"))
	require.Error(t, err)
}

func TestManagerWithoutRoomsSkipsInquiryQuery(t *testing.T) {
	// only accounts and rooms are migrated; touching the inquiry table would
	// fail with "no such table"
	env := newTestEnv(t, &entity.Account{}, &entity.Room{})
	manager := env.createAccount(t, "manager@example.com", "Manager")

	inquiries, err := env.inquiryUsecase().GetManagerInquiries(testCtx(), manager.ID)
	require.NoError(t, err)
	assert.Empty(t, inquiries)
}

func TestUpdateInquiryStatus(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createAccount(t, "manager@example.com", "Manager")
	customer := env.createAccount(t, "customer@example.com", "Customer")
	room := env.createRoom(t, manager.ID, nil)
	uc := env.inquiryUsecase()

	created, err := uc.CreateInquiry(testCtx(), customer.ID, newInquiryRequest(room.ID))
	require.NoError(t, err)

	updated, err := uc.UpdateInquiryStatus(testCtx(), created.ID, &req.UpdateInquiryStatusRequest{Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, "contacted", updated.Status)

	// any transition is allowed, including going back
	updated, err = uc.UpdateInquiryStatus(testCtx(), created.ID, &req.UpdateInquiryStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)

	// repeating the current status is a no-op, not an error
	updated, err = uc.UpdateInquiryStatus(testCtx(), created.ID, &req.UpdateInquiryStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)
}

func TestUpdateInquiryStatusValidation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.inquiryUsecase().UpdateInquiryStatus(testCtx(), "some-id", &req.UpdateInquiryStatusRequest{Status: "archived"})
	require.Error(t, err)
}
