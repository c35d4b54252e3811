package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hisabkitab/bills-tracker/gen/ent"
	"github.com/hisabkitab/bills-tracker/gen/ent/user"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/utils"
)

// NewUser wraps parameters for registering a user profile.
type NewUser struct {
	Username     string
	CompanyName  string
	PANVATNumber string
	BusinessType string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, u *NewUser) (*entity.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.ID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.Username(username)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) CreateUser(ctx context.Context, u *NewUser) (*entity.User, error) {
	created, err := r.client.User.Create().
		SetUsername(u.Username).
		SetCompanyName(u.CompanyName).
		SetPanVatNumber(u.PANVATNumber).
		SetBusinessType(u.BusinessType).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "username", u.Username, "error", err)
		return nil, err
	}
	return utils.ToUser(created), nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(user.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
