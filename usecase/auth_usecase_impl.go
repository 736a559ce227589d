package usecase

import (
	"context"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"room-rental-app/changefeed"
	"room-rental-app/dto/req"
	"room-rental-app/dto/res"
	"room-rental-app/entity"
	"room-rental-app/enum"
	"room-rental-app/repository"
	"room-rental-app/security"
	"room-rental-app/util"
)

type AuthUsecaseImpl struct {
	*repository.AccountRepository
	*repository.RoleRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
	Feed *changefeed.Feed
}

func NewAuthUsecase(accountRepository *repository.AccountRepository, roleRepository *repository.RoleRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT, feed *changefeed.Feed) AuthUsecase {
	return &AuthUsecaseImpl{
		AccountRepository: accountRepository,
		RoleRepository:    roleRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
		JWT:               JWT,
		Feed:              feed,
	}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate register request")
		return res.RegisterResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	newAccount := &entity.Account{
		Email:    request.Email,
		Password: hashPassword,
		FullName: request.FullName,
	}

	if err := uc.AccountRepository.Save(ctx, trx, newAccount); err != nil {
		uc.Logger.WithError(err).Error("failed to save account")
		return res.RegisterResponse{}, err
	}

	role := enum.ParseRole(request.Role)
	if role.Known() {
		newRole := &entity.UserRole{
			UserID: newAccount.ID,
			Role:   role,
		}
		if err := uc.RoleRepository.Save(ctx, trx, newRole); err != nil {
			uc.Logger.WithError(err).Error("failed to save user role")
			return res.RegisterResponse{}, err
		}
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("failed to commit registration")
		return res.RegisterResponse{}, err
	}

	if role.Known() {
		uc.Feed.Publish(changefeed.TableUserRoles, changefeed.ActionInsert, newAccount.ID, map[string]string{
			"user_id": newAccount.ID,
		})
	}

	return res.RegisterResponse{
		ID:    newAccount.ID,
		Email: newAccount.Email,
		Role:  role.String(),
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate login request")
		return res.LoginResponse{}, err
	}

	currentAccount, err := uc.AccountRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to find account for %s", request.Email)
		return res.LoginResponse{}, err
	}

	if matchPassword := util.ComparePassword(currentAccount.Password, request.Password); !matchPassword {
		uc.Logger.Warnf("password mismatch for %s", request.Email)
		return res.LoginResponse{}, ErrUnauthenticated
	}

	token, err := uc.JWT.GenerateToken(&currentAccount)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		Token: token,
	}, nil
}
