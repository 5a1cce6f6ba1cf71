package usecase

import (
	"context"
	"errors"
	"testing"

	"servitec/internal/domain/entities"
	mock_interfaces "servitec/internal/usecase/interfaces/mocks"
	"servitec/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func productDraft() entities.Product {
	return entities.Product{
		Name:     "Cargador 20W",
		SKU:      "CHG-20W",
		Price:    decimal.RequireFromString("45.00"),
		Stock:    12,
		Category: "accesorios",
	}
}

func TestInventoryUseCase_Create(t *testing.T) {
	t.Run("technician cannot create products", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.Create(context.Background(), techActor, productDraft())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		draft := productDraft()
		draft.Name = " "
		draft.SKU = ""
		draft.Stock = -1
		_, err := uc.Create(context.Background(), adminActor, draft)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(v.Fields) != 3 {
			t.Fatalf("unexpected fields: %+v", v.Fields)
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "CHG-20W").Return(entities.Product{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), adminActor, productDraft())
		if !errors.Is(err, ErrSKUAlreadyExists) {
			t.Fatalf("expected ErrSKUAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "CHG-20W").Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), adminActor, productDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.StockStatus() != entities.StockStatusInStock {
			t.Fatalf("unexpected stock status: %s", p.StockStatus())
		}
	})
}

func TestInventoryUseCase_LowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewInventoryUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{
		{ID: "a", Stock: 0},
		{ID: "b", Stock: 3},
		{ID: "c", Stock: 20},
	}, nil)

	low, err := uc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 2 || low[0].ID != "a" || low[1].ID != "b" {
		t.Fatalf("unexpected low stock set: %+v", low)
	}
}

func TestInventoryUseCase_Restock(t *testing.T) {
	t.Run("technician cannot restock", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.Restock(context.Background(), techActor, "p-1", 5)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("quantity below one", func(t *testing.T) {
		uc := NewInventoryUseCase(nil)
		_, err := uc.Restock(context.Background(), adminActor, "p-1", 0)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("applies a positive delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().AdjustStock(gomock.Any(), "p-1", 5).Return(entities.Product{ID: "p-1", Stock: 8}, nil)

		p, err := uc.Restock(context.Background(), adminActor, "p-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Stock != 8 {
			t.Fatalf("unexpected stock: %d", p.Stock)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().AdjustStock(gomock.Any(), "p-9", 5).Return(entities.Product{}, nil)

		_, err := uc.Restock(context.Background(), adminActor, "p-9", 5)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
