package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/pkg/config"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type employeeFinderStub struct {
	employees map[string]*models.Employee
}

func (s employeeFinderStub) FindByEmail(_ context.Context, email string) (*models.Employee, error) {
	employee, ok := s.employees[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return employee, nil
}

func newAuthFixture(t *testing.T) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	finder := employeeFinderStub{employees: map[string]*models.Employee{
		"ana@example.com": {
			ID:               1,
			FullName:         "Ana",
			Email:            "ana@example.com",
			PasswordHash:     string(hash),
			Role:             models.RoleAdmin,
			EmploymentStatus: models.EmploymentActive,
		},
		"gone@example.com": {
			ID:               2,
			Email:            "gone@example.com",
			PasswordHash:     string(hash),
			EmploymentStatus: models.EmploymentInactive,
		},
	}}
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "rota-api"}
	return NewAuthService(finder, cfg, nil)
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	service := newAuthFixture(t)

	result, err := service.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	claims, err := service.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.EmployeeID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.CodeOf(err))
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), models.LoginRequest{Email: "who@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.CodeOf(err))
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Login(context.Background(), models.LoginRequest{Email: "gone@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.CodeOf(err))
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.CodeOf(err))
}
