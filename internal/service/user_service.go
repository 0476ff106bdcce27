package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned by Login for an unknown user, a wrong password or an inactive account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// DTOs for Request validation
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is a User without the password hash
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserService covers caller identities: registration, login and lookup.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	GetByUsername(ctx context.Context, username string) (UserResponse, error)
}

type userService struct {
	repo   repository.UserRepository
	secret []byte
	ttl    time.Duration
	opts   options
}

// NewUserService returns a new instance of UserService. Tokens are HS256-signed with secret and live for ttl.
func NewUserService(repo repository.UserRepository, secret []byte, ttl time.Duration, opts ...Option) UserService {
	return &userService{
		repo:   repo,
		secret: secret,
		ttl:    ttl,
		opts:   buildOptions(opts),
	}
}

func validateRole(role string) bool {
	switch role {
	case model.RoleAdmin, model.RoleManager, model.RoleFinance, model.RoleUser:
		return true
	}
	return false
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return UserResponse{}, apperror.Invalid("Username is required")
	}
	if len(req.Password) < 6 {
		return UserResponse{}, apperror.Invalid("Password must be at least 6 characters")
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleUser
	}
	if !validateRole(role) {
		return UserResponse{}, apperror.Invalid("Invalid role. Valid roles are: ADMIN, MANAGER, FINANCE, USER")
	}

	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return UserResponse{}, apperror.Invalidf("Username already exists: %s", req.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Active:    true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, ErrInvalidCredentials
		}
		return TokenResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.Active {
		return TokenResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	now := s.opts.now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return TokenResponse{Token: signed, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (UserResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, lookupErr(err, "User", "username", username)
	}
	return toUserResponse(user), nil
}
