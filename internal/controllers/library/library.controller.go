package library

import (
	"context"
	"time"

	"stillpoint/internal/apperror"
	. "stillpoint/internal/models"
	"stillpoint/internal/repositories"
	"stillpoint/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type LibraryControllerInterface interface {
	ListFavorites(ctx context.Context, userID int) ([]Session, error)
	GetFavoriteStatus(ctx context.Context, userID, sessionID int) (*FavoriteStatus, error)
	// ToggleFavorite flips the favorite state and reports the new state.
	ToggleFavorite(ctx context.Context, userID, sessionID int) (*FavoriteStatus, error)
	// RecordProgress appends a listening record and folds the minutes into
	// the user's totals and streak in one transaction.
	RecordProgress(ctx context.Context, userID int, req ProgressRequest) (*UserProgress, error)
	GetUserStats(ctx context.Context, userID int) (*UserStats, error)
	GetUsageStats(ctx context.Context) (*UsageStats, error)
}

type LibraryController struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	favoriteRepo repositories.FavoriteRepository
	progressRepo repositories.ProgressRepository
	txService    *services.TransactionService
	log          logger.Logger
}

func New(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	favoriteRepo repositories.FavoriteRepository,
	progressRepo repositories.ProgressRepository,
	txService *services.TransactionService,
) LibraryControllerInterface {
	return &LibraryController{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		favoriteRepo: favoriteRepo,
		progressRepo: progressRepo,
		txService:    txService,
		log:          logger.New("libraryController"),
	}
}

func (c *LibraryController) ListFavorites(ctx context.Context, userID int) ([]Session, error) {
	return c.favoriteRepo.ListForUser(ctx, userID)
}

func (c *LibraryController) GetFavoriteStatus(
	ctx context.Context,
	userID, sessionID int,
) (*FavoriteStatus, error) {
	if err := c.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	favorited, err := c.favoriteRepo.IsFavorite(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	return &FavoriteStatus{IsFavorite: favorited}, nil
}

func (c *LibraryController) ToggleFavorite(
	ctx context.Context,
	userID, sessionID int,
) (*FavoriteStatus, error) {
	if err := c.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	favorited, err := c.favoriteRepo.Toggle(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	return &FavoriteStatus{IsFavorite: favorited}, nil
}

func (c *LibraryController) RecordProgress(
	ctx context.Context,
	userID int,
	req ProgressRequest,
) (*UserProgress, error) {
	log := c.log.Function("RecordProgress")

	if err := c.requireSession(ctx, req.SessionID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	progress := &UserProgress{
		UserID:          userID,
		SessionID:       req.SessionID,
		MinutesListened: req.MinutesListened,
	}

	err := c.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.progressRepo.Create(ctx, tx, progress); err != nil {
			return err
		}
		return c.userRepo.UpdateListeningStats(ctx, tx, userID, req.MinutesListened, now)
	})
	if err != nil {
		return nil, log.Err("failed to record progress", err, "userID", userID)
	}

	return progress, nil
}

func (c *LibraryController) GetUserStats(ctx context.Context, userID int) (*UserStats, error) {
	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User")
	}

	completed, err := c.progressRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalMinutes:      user.TotalMinutes,
		CurrentStreak:     user.CurrentStreak,
		SessionsCompleted: int(completed),
	}, nil
}

func (c *LibraryController) GetUsageStats(ctx context.Context) (*UsageStats, error) {
	userCount, err := c.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	plays, err := c.sessionRepo.GetPlayCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &UsageStats{UserCount: userCount, Sessions: plays}, nil
}

func (c *LibraryController) requireSession(ctx context.Context, sessionID int) error {
	session, err := c.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFound("Session")
	}

	return nil
}
