package usecase

import (
	"context"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/enum"
)

// ProfileUsecase resolves the acting user's role and display profile.
type ProfileUsecase interface {
	// ResolveRole never guesses: no id or no role row both resolve to
	// RoleUnknown, and only a real backend failure returns an error.
	ResolveRole(ctx context.Context, userID string) (enum.Role, error)
	AssignRole(ctx context.Context, userID string, role enum.Role) error
	// GetProfile lazily creates the profile row on first fetch, seeding the
	// display name from the account.
	GetProfile(ctx context.Context, userID string) (res.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.ProfileResponse, error)
}
