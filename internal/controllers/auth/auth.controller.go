package auth

import (
	"context"
	"errors"

	"stillpoint/internal/apperror"
	. "stillpoint/internal/models"
	"stillpoint/internal/repositories"
	"stillpoint/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"golang.org/x/crypto/bcrypt"
)

const BCRYPT_COST = 12

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, userID int) (*UserProfile, error)
}

type AuthController struct {
	userRepo     repositories.UserRepository
	tokenService *services.TokenService
	log          logger.Logger
}

func New(
	userRepo repositories.UserRepository,
	tokenService *services.TokenService,
) AuthControllerInterface {
	return &AuthController{
		userRepo:     userRepo,
		tokenService: tokenService,
		log:          logger.New("authController"),
	}
}

func (c *AuthController) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Register")

	existing, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, log.Err("failed to check for existing user", err)
	}
	if existing != nil {
		return nil, apperror.Validation("email", "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BCRYPT_COST)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	}
	// Losing the race against the unique index reads the same as the
	// pre-check hit above.
	if err := c.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Validation("email", "Email already registered")
		}
		return nil, err
	}

	token, err := c.tokenService.Issue(user.ID)
	if err != nil {
		return nil, log.Err("failed to issue token", err, "userID", user.ID)
	}

	return &AuthResponse{Token: token, User: user.ToProfile()}, nil
}

func (c *AuthController) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	log := c.log.Function("Login")

	user, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, log.Err("failed to look up user", err)
	}

	// Unknown email and wrong password share one response so callers
	// cannot probe which emails are registered.
	if user == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := c.tokenService.Issue(user.ID)
	if err != nil {
		return nil, log.Err("failed to issue token", err, "userID", user.ID)
	}

	return &AuthResponse{Token: token, User: user.ToProfile()}, nil
}

func (c *AuthController) GetUser(ctx context.Context, userID int) (*UserProfile, error) {
	log := c.log.Function("GetUser")

	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to get user", err, "userID", userID)
	}
	if user == nil {
		return nil, apperror.NotFound("User")
	}

	profile := user.ToProfile()
	return &profile, nil
}
