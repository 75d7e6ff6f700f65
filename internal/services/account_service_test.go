package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

func newTestAccountService(t *testing.T) AccountServiceInterface {
	return NewAccountService(repositories.NewAccountRepository(openTestDB(t)))
}

func TestCreateAccountAndLogin(t *testing.T) {
	svc := newTestAccountService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Amine",
		Email:       "amine@example.com",
		Password:    "secret42",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amine", created.Name)
	assert.Equal(t, "user", created.Role)
	require.NotEmpty(t, created.ID)

	login, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "amine@example.com",
		Password: "secret42",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	fetched, err := svc.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, fetched.Email)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc := newTestAccountService(t)
	ctx := context.Background()

	req := request_models.SignUpRequest{
		DisplayName: "Amine",
		Email:       "amine@example.com",
		Password:    "secret42",
	}
	_, err := svc.CreateAccount(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAccountService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Amine",
		Email:       "amine@example.com",
		Password:    "secret42",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "amine@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "secret42"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetAccountNotFound(t *testing.T) {
	svc := newTestAccountService(t)

	_, err := svc.GetAccount(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
