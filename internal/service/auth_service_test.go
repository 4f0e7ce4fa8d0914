package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type mockUserRepo struct {
	users map[string]*models.AdminUser
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if user, ok := m.users[strings.ToLower(email)]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	for _, user := range m.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func newAuthFixture(t *testing.T, active bool) (*AuthService, *models.AdminUser) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.AdminUser{
		ID:           1,
		Email:        "admin@school.test",
		PasswordHash: string(hash),
		FullName:     "Site Admin",
		Active:       active,
	}
	repo := &mockUserRepo{users: map[string]*models.AdminUser{user.Email: user}}
	svc := NewAuthService(repo, nil, nil, AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "school-site-api",
	})
	return svc, user
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	svc, user := newAuthFixture(t, true)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, user.Email, resp.User.Email)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "school-site-api", claims.Issuer)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, user := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "wrong"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@school.test", Password: "s3cret"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	svc, user := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "s3cret"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErr.Code)
}

func TestAuthServiceValidateTokenRejectsForeignSecret(t *testing.T) {
	svc, user := newAuthFixture(t, true)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "s3cret"})
	require.NoError(t, err)

	other := NewAuthService(&mockUserRepo{}, nil, nil, AuthConfig{Secret: "different", Expiration: time.Hour})
	_, err = other.ValidateToken(resp.AccessToken)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestAuthServiceMeNotFound(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Me(context.Background(), &models.JWTClaims{UserID: 999})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
