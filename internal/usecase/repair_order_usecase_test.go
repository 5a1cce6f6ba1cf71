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

var (
	adminActor = entities.Actor{ID: "admin-1", Role: entities.UserRoleAdmin}
	techActor  = entities.Actor{ID: "tech-1", Role: entities.UserRoleTechnician}
)

func intakeDraft() entities.RepairOrder {
	return entities.RepairOrder{
		CustomerName:  "Maria Lopez",
		CustomerPhone: "999888777",
		Devices: []entities.Device{
			{
				Type:          entities.DeviceTypeSmartphone,
				Brand:         "Samsung",
				Model:         "A54",
				ReportedIssue: "no enciende",
				ReviewCost:    decimal.RequireFromString("20.00"),
			},
		},
	}
}

func TestRepairOrderUseCase_Create(t *testing.T) {
	t.Run("missing fields are reported per field", func(t *testing.T) {
		uc := NewRepairOrderUseCase(nil)

		draft := intakeDraft()
		draft.CustomerName = "   "
		draft.Devices[0].Brand = ""

		_, err := uc.Create(context.Background(), techActor, draft)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
		fields := map[string]bool{}
		for _, f := range v.Fields {
			fields[f.Field] = true
		}
		if !fields["customer_name"] || !fields["devices[0].brand"] {
			t.Fatalf("unexpected fields: %+v", v.Fields)
		}
	})

	t.Run("no devices", func(t *testing.T) {
		uc := NewRepairOrderUseCase(nil)

		draft := intakeDraft()
		draft.Devices = nil

		_, err := uc.Create(context.Background(), techActor, draft)
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success assigns the filing technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RepairOrder{})).DoAndReturn(
			func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
				if o.ID == "" {
					t.Fatalf("expected a generated id")
				}
				if o.Status != entities.RepairStatusPending {
					t.Fatalf("expected PENDING, got %s", o.Status)
				}
				if o.TechnicianID != techActor.ID {
					t.Fatalf("expected auto-assignment to %s, got %s", techActor.ID, o.TechnicianID)
				}
				if len(o.Devices) != 1 || o.Devices[0].ID == "" {
					t.Fatalf("expected device ids to be generated: %+v", o.Devices)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		got, err := uc.Create(context.Background(), techActor, intakeDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RepairStatusPending {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("explicit assignment wins over the filer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		draft := intakeDraft()
		draft.TechnicianID = "tech-9"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
				if o.TechnicianID != "tech-9" {
					t.Fatalf("expected tech-9, got %s", o.TechnicianID)
				}
				return o, nil
			},
		)

		if _, err := uc.Create(context.Background(), adminActor, draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRepairOrderUseCase_AdvanceStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRepairOrderUseCase(nil)
		_, err := uc.AdvanceStatus(context.Background(), adminActor, "  ")
		if !errors.Is(err, ErrInvalidRepairOrderID) {
			t.Fatalf("expected ErrInvalidRepairOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{}, nil)

		_, err := uc.AdvanceStatus(context.Background(), adminActor, "ro-1")
		if !errors.Is(err, ErrRepairOrderNotFound) {
			t.Fatalf("expected ErrRepairOrderNotFound, got %v", err)
		}
	})

	t.Run("unassigned technician is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{ID: "ro-1", TechnicianID: "tech-9", Status: entities.RepairStatusPending}, nil)

		_, err := uc.AdvanceStatus(context.Background(), techActor, "ro-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("full chain stamps completion and delivery", func(t *testing.T) {
		steps := []struct {
			from, to entities.RepairStatus
		}{
			{entities.RepairStatusPending, entities.RepairStatusInProgress},
			{entities.RepairStatusInProgress, entities.RepairStatusCompleted},
			{entities.RepairStatusCompleted, entities.RepairStatusDelivered},
		}
		for _, step := range steps {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
			uc := NewRepairOrderUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{ID: "ro-1", TechnicianID: "tech-1", Status: step.from}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
					if o.Status != step.to {
						t.Fatalf("%s advanced to %s, want %s", step.from, o.Status, step.to)
					}
					if step.to == entities.RepairStatusCompleted && o.CompletedAt == nil {
						t.Fatalf("expected completed_at to be stamped")
					}
					if step.to == entities.RepairStatusDelivered && o.DeliveredAt == nil {
						t.Fatalf("expected delivered_at to be stamped")
					}
					return o, nil
				},
			)

			if _, err := uc.AdvanceStatus(context.Background(), techActor, "ro-1"); err != nil {
				t.Fatalf("advance from %s: %v", step.from, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("terminal statuses cannot advance", func(t *testing.T) {
		for _, s := range []entities.RepairStatus{entities.RepairStatusDelivered, entities.RepairStatusCancelled} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
			uc := NewRepairOrderUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{ID: "ro-1", Status: s}, nil)

			_, err := uc.AdvanceStatus(context.Background(), adminActor, "ro-1")
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition for %s, got %v", s, err)
			}
			ctrl.Finish()
		}
	})
}

func TestRepairOrderUseCase_Cancel(t *testing.T) {
	t.Run("technician cannot cancel", func(t *testing.T) {
		uc := NewRepairOrderUseCase(nil)
		_, err := uc.Cancel(context.Background(), techActor, "ro-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin cancels an active order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{ID: "ro-1", Status: entities.RepairStatusInProgress}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
				if o.Status != entities.RepairStatusCancelled {
					t.Fatalf("expected CANCELLED, got %s", o.Status)
				}
				return o, nil
			},
		)

		if _, err := uc.Cancel(context.Background(), adminActor, "ro-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{ID: "ro-1", Status: entities.RepairStatusDelivered}, nil)

		_, err := uc.Cancel(context.Background(), adminActor, "ro-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestRepairOrderUseCase_UpdateDiagnosis(t *testing.T) {
	t.Run("empty diagnosis", func(t *testing.T) {
		uc := NewRepairOrderUseCase(nil)
		_, err := uc.UpdateDiagnosis(context.Background(), techActor, "ro-1", "dev-1", "   ")
		var v *pkg.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{
			ID:           "ro-1",
			TechnicianID: "tech-1",
			Devices:      []entities.Device{{ID: "dev-1"}},
		}, nil)

		_, err := uc.UpdateDiagnosis(context.Background(), techActor, "ro-1", "dev-9", "pantalla rota")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("sets the diagnosis on the right device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{
			ID:           "ro-1",
			TechnicianID: "tech-1",
			Devices:      []entities.Device{{ID: "dev-1"}, {ID: "dev-2"}},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
				if o.Devices[1].Diagnosis != "pantalla rota" {
					t.Fatalf("diagnosis not applied: %+v", o.Devices)
				}
				if o.Devices[0].Diagnosis != "" {
					t.Fatalf("wrong device touched: %+v", o.Devices)
				}
				return o, nil
			},
		)

		if _, err := uc.UpdateDiagnosis(context.Background(), techActor, "ro-1", "dev-2", "pantalla rota"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRepairOrderUseCase_List(t *testing.T) {
	t.Run("admin sees everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.RepairOrder{{ID: "a"}, {ID: "b"}}, nil)

		got, err := uc.List(context.Background(), adminActor)
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %v, %v", got, err)
		}
	})

	t.Run("technician sees own assignments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
		uc := NewRepairOrderUseCase(repo)

		repo.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return([]entities.RepairOrder{{ID: "a"}}, nil)

		got, err := uc.List(context.Background(), techActor)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v, %v", got, err)
		}
	})
}
