package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/config"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService(f *fixture) *AuthService {
	return NewAuthService(f.users, f.tokens, &config.Config{
		JWTSecret:        testSecret,
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	})
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	f.users.On("GetByEmail", mock.Anything, "alex@example.com").Return(nil, repository.ErrNotFound).Once()
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "alex@example.com" &&
			u.Role == models.RoleCouple &&
			u.AuthProvider == "email" &&
			u.ProviderID == "alex@example.com" &&
			u.Password != "secret-pass"
	})).Return(nil).Once()
	f.tokens.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil).Once()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     " Alex@Example.com ",
		Password:  "secret-pass",
		FirstName: "Alex",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.RefreshToken)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "couple", claims["role"])
	assert.Equal(t, "Alex", claims["given_name"])
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	f.users.On("GetByEmail", mock.Anything, "alex@example.com").Return(&models.User{ID: uuid.New()}, nil).Once()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "alex@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "alex@example.com", Password: "short"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"password": "must be at least 8 characters"}, verr.Fields)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	f.users.On("GetByEmail", mock.Anything, "alex@example.com").
		Return(&models.User{ID: uuid.New(), Password: hashed(t, "secret-pass")}, nil).Once()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alex@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefresh_RotatesOnce(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	user := f.givenUser(models.RoleVendor)
	raw := "refresh-token"
	hash := hashToken(raw)
	stored := &models.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour)}

	f.tokens.On("FindActive", mock.Anything, hash).Return(stored, nil).Twice()
	f.tokens.On("Revoke", mock.Anything, hash).Return(true, nil).Once()
	f.tokens.On("Revoke", mock.Anything, hash).Return(false, nil).Once()
	f.tokens.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil).Once()

	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: raw})
	require.NoError(t, err)
	assert.NotEqual(t, raw, resp.RefreshToken)

	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: raw})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_Expired(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	hash := hashToken("old")
	f.tokens.On("FindActive", mock.Anything, hash).
		Return(&models.RefreshToken{UserID: uuid.New(), TokenHash: hash, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
	f.tokens.On("Revoke", mock.Anything, hash).Return(true, nil).Once()

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: "old"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	id := uuid.New()
	f.users.On("GetByID", mock.Anything, id).Return(&models.User{ID: id, Password: hashed(t, "secret-pass")}, nil)
	f.users.On("Delete", mock.Anything, id).Return(nil).Once()

	err := svc.DeleteAccount(context.Background(), id, "")
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.DeleteAccount(context.Background(), id, "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.DeleteAccount(context.Background(), id, "secret-pass"))
}
