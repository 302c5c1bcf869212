package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userService implements UserService on top of the user and token repos.
type userService struct {
	db        storage.TxBeginner
	userRepo  storage.UserRepository
	tokenRepo storage.TokenRepository
	jwtCfg    config.JWTConfig
}

// NewUserService creates a new UserService.
func NewUserService(db storage.TxBeginner, userRepo storage.UserRepository, tokenRepo storage.TokenRepository, jwtCfg config.JWTConfig) UserService {
	return &userService{db: db, userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Compile-time check to ensure userService implements UserService
var _ UserService = (*userService)(nil)

// Signup registers a new account and logs it in immediately.
func (s *userService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	role := models.RoleUser
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	// The account and its first session token land together or not at all.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UserService: Error beginning signup transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	created, err := s.userRepo.WithTx(tx).Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, MapRepoError(err, "signup")
	}

	token, expiresAt, err := s.issueToken(created)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.WithTx(tx).Add(ctx, created.ID, token, expiresAt); err != nil {
		return nil, MapRepoError(err, "store session token")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("UserService: Error committing signup transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("UserService: User registered: %s", created.ID)
	return &dto.AuthResponse{User: MapUserToResponse(created), Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, MapRepoError(err, "login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Add(ctx, user.ID, token, expiresAt); err != nil {
		return nil, MapRepoError(err, "store session token")
	}

	log.Printf("UserService: User logged in: %s", user.ID)
	return &dto.AuthResponse{User: MapUserToResponse(user), Token: token}, nil
}

// Logout removes the presented token from the active list, or every token
// with All set. The token becomes unusable even before its JWT expiry.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.All {
		if err := s.tokenRepo.RemoveAll(ctx, req.UserID); err != nil {
			return MapRepoError(err, "logout all sessions")
		}
		return nil
	}
	if err := s.tokenRepo.Remove(ctx, req.UserID, req.Token); err != nil {
		return MapRepoError(err, "logout")
	}
	return nil
}

// IsTokenActive reports whether the token is still in the user's active list.
func (s *userService) IsTokenActive(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	active, err := s.tokenRepo.Exists(ctx, userID, token)
	if err != nil {
		return false, MapRepoError(err, "check session token")
	}
	return active, nil
}

// issueToken signs a new HS256 JWT for the user.
func (s *userService) issueToken(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.jwtCfg.Expiration)
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		log.Printf("UserService: Error signing token: %v", err)
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
