package usecase

import (
	"context"
	"errors"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// IProductUseCase exposes catalog reads. Stock levels returned here are a
// client-side hint; the authoritative check happens at order confirmation.

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id int) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id int) (entities.Product, error) {
	if id <= 0 {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
