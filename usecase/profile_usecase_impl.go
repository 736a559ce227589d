package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"room-rental-app/changefeed"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/entity"
	"room-rental-app/enum"
	"room-rental-app/livequery"
	"room-rental-app/repository"
)

type ProfileUsecaseImpl struct {
	*repository.ProfileRepository
	*repository.RoleRepository
	*repository.AccountRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Feed  *changefeed.Feed
	Cache *livequery.Cache
}

func NewProfileUsecase(profileRepository *repository.ProfileRepository, roleRepository *repository.RoleRepository, accountRepository *repository.AccountRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, feed *changefeed.Feed, cache *livequery.Cache) ProfileUsecase {
	return &ProfileUsecaseImpl{
		ProfileRepository: profileRepository,
		RoleRepository:    roleRepository,
		AccountRepository: accountRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
		Feed:              feed,
		Cache:             cache,
	}
}

func (uc *ProfileUsecaseImpl) ResolveRole(ctx context.Context, userID string) (enum.Role, error) {
	if userID == "" {
		return enum.RoleUnknown, nil
	}
	role, err := uc.RoleRepository.FindByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to resolve role for %s", userID)
		return enum.RoleUnknown, err
	}
	return role, nil
}

func (uc *ProfileUsecaseImpl) AssignRole(ctx context.Context, userID string, role enum.Role) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if !role.Known() {
		return errors.New("cannot assign an unknown role")
	}

	newRole := &entity.UserRole{
		UserID: userID,
		Role:   role,
	}
	if err := uc.RoleRepository.Save(ctx, uc.DB, newRole); err != nil {
		uc.Logger.WithError(err).Errorf("failed to assign role %s to %s", role, userID)
		return err
	}

	uc.Cache.Invalidate(livequery.Key(KeyUserRole, userID))
	uc.Feed.Publish(changefeed.TableUserRoles, changefeed.ActionInsert, newRole.ID, map[string]string{
		"user_id": userID,
	})
	return nil
}

func (uc *ProfileUsecaseImpl) GetProfile(ctx context.Context, userID string) (res.ProfileResponse, error) {
	if userID == "" {
		return res.ProfileResponse{}, ErrUnauthenticated
	}

	role, err := uc.ResolveRole(ctx, userID)
	if err != nil {
		return res.ProfileResponse{}, err
	}

	profile, err := uc.ProfileRepository.FindByUserID(ctx, uc.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created, createErr := uc.createProfile(ctx, userID)
		if createErr != nil {
			return res.ProfileResponse{}, createErr
		}
		profile = created
	} else if err != nil {
		uc.Logger.WithError(err).Errorf("failed to fetch profile for %s", userID)
		return res.ProfileResponse{}, err
	}

	response := res.NewProfileResponse(profile, role.String())
	if response.FullName == "" {
		// display substitution only, the stored row stays blank
		response.FullName = uc.displayName(ctx, userID)
	}
	return response, nil
}

func (uc *ProfileUsecaseImpl) UpdateProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.ProfileResponse, error) {
	if userID == "" {
		return res.ProfileResponse{}, ErrUnauthenticated
	}
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate profile request")
		return res.ProfileResponse{}, err
	}

	profile, err := uc.ProfileRepository.FindByUserID(ctx, uc.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile, err = uc.createProfile(ctx, userID)
	}
	if err != nil {
		return res.ProfileResponse{}, err
	}

	profile.FullName = request.FullName
	profile.Phone = request.Phone
	profile.AvatarURL = request.AvatarURL
	if err := uc.ProfileRepository.Update(ctx, uc.DB, profile); err != nil {
		uc.Logger.WithError(err).Errorf("failed to update profile for %s", userID)
		return res.ProfileResponse{}, err
	}

	role, err := uc.ResolveRole(ctx, userID)
	if err != nil {
		return res.ProfileResponse{}, err
	}

	uc.Cache.Invalidate(livequery.Key(KeyUserProfile, userID))
	uc.Feed.Publish(changefeed.TableProfiles, changefeed.ActionUpdate, profile.ID, map[string]string{
		"id": profile.ID,
	})
	return res.NewProfileResponse(profile, role.String()), nil
}

func (uc *ProfileUsecaseImpl) createProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	profile := &entity.Profile{
		ID:       userID,
		FullName: uc.displayName(ctx, userID),
	}
	if err := uc.ProfileRepository.Save(ctx, uc.DB, profile); err != nil {
		uc.Logger.WithError(err).Errorf("failed to create profile for %s", userID)
		return nil, err
	}

	uc.Feed.Publish(changefeed.TableProfiles, changefeed.ActionInsert, profile.ID, map[string]string{
		"id": profile.ID,
	})
	return profile, nil
}

// displayName falls back from the account's registered name to the local part
// of the email.
func (uc *ProfileUsecaseImpl) displayName(ctx context.Context, userID string) string {
	var account entity.Account
	if err := uc.AccountRepository.FindById(ctx, uc.DB, &account, userID); err != nil {
		return "User"
	}
	if account.FullName != "" {
		return account.FullName
	}
	if at := strings.Index(account.Email, "@"); at > 0 {
		return account.Email[:at]
	}
	return "User"
}
