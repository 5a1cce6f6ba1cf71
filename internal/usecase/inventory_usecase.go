package usecase

import (
	"context"
	"errors"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
	"servitec/pkg"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrSKUAlreadyExists = errors.New("sku already exists")
)

// IInventoryUseCase manages the product catalog and stock levels. Stock
// classification (sold out / low / in stock) lives on the entity; this
// usecase surfaces it for the low-stock alert feed.

type IInventoryUseCase interface {
	Create(ctx context.Context, actor entities.Actor, draft entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	LowStock(ctx context.Context) ([]entities.Product, error)
	Restock(ctx context.Context, actor entities.Actor, id string, quantity int) (entities.Product, error)
}

type InventoryUseCase struct {
	repo interfaces.IProductRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) Create(ctx context.Context, actor entities.Actor, draft entities.Product) (entities.Product, error) {
	if !actor.IsAdmin() {
		return entities.Product{}, ErrForbidden
	}

	v := &pkg.ValidationError{}
	if strings.TrimSpace(draft.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(draft.SKU) == "" {
		v.Add("sku", "sku is required")
	}
	if draft.Price.IsNegative() {
		v.Add("price", "price must be non-negative")
	}
	if draft.Stock < 0 {
		v.Add("stock", "stock must be non-negative")
	}
	if err := v.OrNil(); err != nil {
		return entities.Product{}, err
	}

	sku := strings.TrimSpace(draft.SKU)
	if existing, err := u.repo.GetBySKU(ctx, sku); err != nil {
		return entities.Product{}, err
	} else if existing.ID != "" {
		return entities.Product{}, ErrSKUAlreadyExists
	}

	now := time.Now().UTC()
	p := draft
	p.ID = uuid.NewString()
	p.Name = strings.TrimSpace(draft.Name)
	p.SKU = sku
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *InventoryUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// LowStock returns the products needing attention: everything classified low
// or sold out.
func (u *InventoryUseCase) LowStock(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0)
	for _, p := range all {
		if p.StockStatus() != entities.StockStatusInStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *InventoryUseCase) Restock(ctx context.Context, actor entities.Actor, id string, quantity int) (entities.Product, error) {
	if !actor.IsAdmin() {
		return entities.Product{}, ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if quantity < 1 {
		v := &pkg.ValidationError{}
		v.Add("quantity", "restock quantity must be at least 1")
		return entities.Product{}, v
	}

	p, err := u.repo.AdjustStock(ctx, id, quantity)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
