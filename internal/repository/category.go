package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hisabkitab/bills-tracker/constants"
	"github.com/hisabkitab/bills-tracker/gen/ent"
	"github.com/hisabkitab/bills-tracker/gen/ent/category"
	"github.com/hisabkitab/bills-tracker/internal/common"
	"github.com/hisabkitab/bills-tracker/internal/entity"
	"github.com/hisabkitab/bills-tracker/internal/utils"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	// SeedDefaults installs the default taxonomy, skipping categories that
	// already exist. Returns how many were created.
	SeedDefaults(ctx context.Context) (int, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.client.Category.
		Query().
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Category, len(categories))
	for i, cat := range categories {
		result[i] = utils.ToCategory(cat)
	}
	return result, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.NameEqualFold(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("category %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToCategory(cat), nil
}

func (r *categoryRepository) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	for _, def := range constants.DefaultCategories {
		exists, err := r.client.Category.Query().
			Where(category.Name(def.Name)).
			Exist(ctx)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		_, err = r.client.Category.Create().
			SetName(def.Name).
			SetCategoryType(string(def.Type)).
			SetKeywords(def.Keywords).
			SetColor(def.Color).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to seed category", "name", def.Name, "error", err)
			return created, err
		}
		created++
	}
	r.logger.Info("category seed complete", "created", created, "total", len(constants.DefaultCategories))
	return created, nil
}
