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

func budgetInput() CreateBudgetInput {
	return CreateBudgetInput{
		RepairOrderID:              "ro-1",
		LaborCost:                  "80.00",
		PartsCost:                  "120.50",
		AdditionalCosts:            "15.00",
		AdditionalCostsDescription: "envio de repuesto",
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing repair order id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		in := budgetInput()
		in.RepairOrderID = "   "
		_, err := uc.Create(context.Background(), adminActor, in)
		if !errors.Is(err, ErrInvalidRepairOrderID) {
			t.Fatalf("expected ErrInvalidRepairOrderID, got %v", err)
		}
	})

	t.Run("non numeric and negative costs", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		in := budgetInput()
		in.LaborCost = "abc"
		in.PartsCost = "-5"
		_, err := uc.Create(context.Background(), adminActor, in)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
		fields := map[string]bool{}
		for _, f := range v.Fields {
			fields[f.Field] = true
		}
		if !fields["labor_cost"] || !fields["parts_cost"] {
			t.Fatalf("unexpected fields: %+v", v.Fields)
		}
	})

	t.Run("additional costs require a description", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		in := budgetInput()
		in.AdditionalCostsDescription = "  "
		_, err := uc.Create(context.Background(), adminActor, in)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(v.Fields) != 1 || v.Fields[0].Field != "additional_costs_description" {
			t.Fatalf("unexpected fields: %+v", v.Fields)
		}
	})

	t.Run("one budget per repair order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByRepairOrderID(gomock.Any(), "ro-1").Return(entities.Budget{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), adminActor, budgetInput())
		if !errors.Is(err, ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("total is the exact sum of the breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByRepairOrderID(gomock.Any(), "ro-1").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" {
					t.Fatalf("expected a generated id")
				}
				if b.Approved {
					t.Fatalf("a new budget must start unapproved")
				}
				if !b.TotalCost.Equal(decimal.RequireFromString("215.50")) {
					t.Fatalf("unexpected total: %s", b.TotalCost)
				}
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), adminActor, budgetInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.TotalCost.Equal(decimal.RequireFromString("215.50")) {
			t.Fatalf("unexpected total: %s", b.TotalCost)
		}
	})

	t.Run("omitted additional costs default to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		in := budgetInput()
		in.AdditionalCosts = ""
		in.AdditionalCostsDescription = ""

		repo.EXPECT().GetByRepairOrderID(gomock.Any(), "ro-1").Return(entities.Budget{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if !b.AdditionalCosts.IsZero() {
					t.Fatalf("expected zero additional costs, got %s", b.AdditionalCosts)
				}
				if !b.TotalCost.Equal(decimal.RequireFromString("200.50")) {
					t.Fatalf("unexpected total: %s", b.TotalCost)
				}
				return b, nil
			},
		)

		if _, err := uc.Create(context.Background(), adminActor, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Approval(t *testing.T) {
	t.Run("technician cannot approve", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Approve(context.Background(), techActor, "b-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("technician cannot reject", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.Reject(context.Background(), techActor, "b-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("approve flips only the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().UpdateApprovalByID(gomock.Any(), "b-1", true).Return(entities.Budget{ID: "b-1", Approved: true}, nil)

		b, err := uc.Approve(context.Background(), adminActor, "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.Approved {
			t.Fatalf("expected approved")
		}
	})

	t.Run("approve is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().UpdateApprovalByID(gomock.Any(), "b-1", true).Return(entities.Budget{ID: "b-1", Approved: true}, nil).Times(2)

		for i := 0; i < 2; i++ {
			if _, err := uc.Approve(context.Background(), adminActor, "b-1"); err != nil {
				t.Fatalf("attempt %d: %v", i, err)
			}
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().UpdateApprovalByID(gomock.Any(), "b-9", false).Return(entities.Budget{}, nil)

		_, err := uc.Reject(context.Background(), adminActor, "b-9")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_GetByRepairOrderID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil)
		_, err := uc.GetByRepairOrderID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRepairOrderID) {
			t.Fatalf("expected ErrInvalidRepairOrderID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByRepairOrderID(gomock.Any(), "ro-1").Return(entities.Budget{ID: "b-1", RepairOrderID: "ro-1"}, nil)

		b, err := uc.GetByRepairOrderID(context.Background(), " ro-1 ")
		if err != nil || b.ID != "b-1" {
			t.Fatalf("unexpected result: %+v, %v", b, err)
		}
	})
}
