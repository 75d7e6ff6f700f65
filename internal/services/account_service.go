package services

import (
	"context"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Name, account.Email, account.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountLoginResponse{Token: token}, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         "user",
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toAccountResponse(account), nil
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := s.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(account *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}
