package services

import (
	"context"
	"testing"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTConfig = config.JWTConfig{Secret: "test-secret", Expiration: time.Hour}

func setupUserServiceTest() (context.Context, UserService, *stubTxBeginner, *mockUserRepo, *mockTokenRepo) {
	db := &stubTxBeginner{}
	userRepo := &mockUserRepo{}
	tokenRepo := &mockTokenRepo{}
	return context.Background(), NewUserService(db, userRepo, tokenRepo, testJWTConfig), db, userRepo, tokenRepo
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx, svc, _, userRepo, tokenRepo := setupUserServiceTest()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         models.RoleUser,
	}

	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	tokenRepo.On("Add", ctx, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	require.NotEmpty(t, resp.Token)

	// The issued token carries the user id and role and verifies with the
	// configured secret.
	parsed, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (any, error) {
		return []byte(testJWTConfig.Secret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, string(models.RoleUser), claims["role"])
	tokenRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx, svc, _, userRepo, tokenRepo := setupUserServiceTest()

	user := &models.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hashOf(t, "correct horse")}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "battery staple"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	ctx, svc, _, userRepo, _ := setupUserServiceTest()

	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, storage.ErrNotFound)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Same error as a wrong password, so callers cannot probe for accounts.
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Signup_CommitsUserAndToken(t *testing.T) {
	ctx, svc, db, userRepo, tokenRepo := setupUserServiceTest()

	created := &models.User{
		ID:        uuid.New(),
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Role:      models.RoleUser,
	}
	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(created, nil)
	tokenRepo.On("Add", ctx, created.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	resp, err := svc.Signup(ctx, &dto.SignupRequest{
		Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.User.ID)
	require.NotNil(t, db.lastTx)
	assert.True(t, db.lastTx.committed)
	assert.False(t, db.lastTx.rolledBack)
	tokenRepo.AssertExpectations(t)
}

func TestUserService_Signup_RollsBackWhenTokenStoreFails(t *testing.T) {
	ctx, svc, db, userRepo, tokenRepo := setupUserServiceTest()

	created := &models.User{ID: uuid.New(), Email: "ada@example.com", Role: models.RoleUser}
	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(created, nil)
	tokenRepo.On("Add", ctx, created.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(assert.AnError)

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: "correct horse",
	})

	// The account insert must not survive on its own.
	require.Error(t, err)
	require.NotNil(t, db.lastTx)
	assert.True(t, db.lastTx.rolledBack)
	assert.False(t, db.lastTx.committed)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	ctx, svc, _, userRepo, _ := setupUserServiceTest()

	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil, storage.ErrConflict)

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Password: "correct horse",
	})

	require.ErrorIs(t, err, ErrConflict)
}

func TestUserService_Logout_RemovesPresentedToken(t *testing.T) {
	ctx, svc, _, _, tokenRepo := setupUserServiceTest()

	userID := uuid.New()
	tokenRepo.On("Remove", ctx, userID, "the-token").Return(nil)

	err := svc.Logout(ctx, &dto.LogoutRequest{UserID: userID, Token: "the-token"})

	require.NoError(t, err)
	tokenRepo.AssertExpectations(t)
}

func TestUserService_Logout_All(t *testing.T) {
	ctx, svc, _, _, tokenRepo := setupUserServiceTest()

	userID := uuid.New()
	tokenRepo.On("RemoveAll", ctx, userID).Return(nil)

	err := svc.Logout(ctx, &dto.LogoutRequest{UserID: userID, All: true})

	require.NoError(t, err)
	tokenRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_IsTokenActive(t *testing.T) {
	ctx, svc, _, _, tokenRepo := setupUserServiceTest()

	userID := uuid.New()
	tokenRepo.On("Exists", ctx, userID, "live").Return(true, nil)
	tokenRepo.On("Exists", ctx, userID, "revoked").Return(false, nil)

	active, err := svc.IsTokenActive(ctx, userID, "live")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = svc.IsTokenActive(ctx, userID, "revoked")
	require.NoError(t, err)
	assert.False(t, active)
}
