package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/selamlab/ethio-calendar-bot/internal/models"
	"github.com/selamlab/ethio-calendar-bot/internal/storage"
)

type UserService struct {
	store  storage.UserStore
	logger *zap.Logger
}

func NewUserService(store storage.UserStore) *UserService {
	logger, _ := zap.NewProduction()
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Track records that the user interacted with the bot and reports whether
// this is the first time we see them.
func (s *UserService) Track(ctx context.Context, userID int64, username, firstName string) (bool, error) {
	user := models.User{
		FirstSeen: time.Now().Unix(),
		Username:  username,
		FirstName: firstName,
	}
	isNew, err := s.store.AddUser(ctx, userID, user)
	if err != nil {
		s.logger.Error("failed to record user",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return false, err
	}
	if isNew {
		s.logger.Info("new user started the bot",
			zap.Int64("user_id", userID),
			zap.String("username", username))
	}
	return isNew, nil
}

// Count returns the number of unique users seen so far.
func (s *UserService) Count(ctx context.Context) (int, error) {
	count, err := s.store.CountUsers(ctx)
	if err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
	}
	return count, err
}
