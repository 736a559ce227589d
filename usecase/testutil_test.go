package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"room-rental-app/changefeed"
	"room-rental-app/entity"
	"room-rental-app/livequery"
	"room-rental-app/repository"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB opens a private in-memory database and migrates the given models,
// or the full schema when none are named. Handing a subset lets a test prove
// that an operation never touches an absent table.
func newTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	if len(models) == 0 {
		models = []interface{}{
			&entity.Account{},
			&entity.Profile{},
			&entity.UserRole{},
			&entity.Room{},
			&entity.Inquiry{},
		}
	}
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

type testEnv struct {
	db    *gorm.DB
	feed  *changefeed.Feed
	cache *livequery.Cache
	log   *logrus.Logger
}

func newTestEnv(t *testing.T, models ...interface{}) *testEnv {
	t.Helper()
	log := newTestLogger()
	feed := changefeed.NewFeed(log)
	t.Cleanup(feed.Close)
	return &testEnv{
		db:    newTestDB(t, models...),
		feed:  feed,
		cache: livequery.NewCache(log),
		log:   log,
	}
}

func (env *testEnv) roomUsecase() RoomUsecase {
	return NewRoomUsecase(repository.NewRoomRepository(), validator.New(), env.db, env.log, env.feed, env.cache, nil)
}

func (env *testEnv) inquiryUsecase() InquiryUsecase {
	return NewInquiryUsecase(repository.NewInquiryRepository(), repository.NewRoomRepository(), validator.New(), env.db, env.log, env.feed, env.cache)
}

func (env *testEnv) profileUsecase() ProfileUsecase {
	return NewProfileUsecase(repository.NewProfileRepository(), repository.NewRoleRepository(), repository.NewAccountRepository(), validator.New(), env.db, env.log, env.feed, env.cache)
}

func (env *testEnv) createAccount(t *testing.T, email, fullName string) entity.Account {
	t.Helper()
	account := entity.Account{Email: email, Password: "irrelevant", FullName: fullName}
	require.NoError(t, env.db.Create(&account).Error)
	return account
}

func (env *testEnv) createRoom(t *testing.T, ownerID string, mutate func(*entity.Room)) entity.Room {
	t.Helper()
	room := entity.Room{
		OwnerID:          ownerID,
		Title:            "Sunny room near campus",
		Location:         "5th Cross, Indiranagar",
		City:             "Bengaluru",
		RentPrice:        12000,
		PropertyType:     "1 BHK",
		TenantPreference: "Any",
		ContactNumber:    "9876543210",
		Images:           entity.ImageList{},
		IsAvailable:      true,
	}
	if mutate != nil {
		mutate(&room)
	}
	require.NoError(t, env.db.Create(&room).Error)
	return room
}

func testCtx() context.Context {
	return context.Background()
}
