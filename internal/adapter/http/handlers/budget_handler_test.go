package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servitec/internal/adapter/http/handlers/mocks"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"
	"servitec/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func asActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
	}
}

var testAdmin = entities.Actor{ID: "admin-1", Role: entities.UserRoleAdmin}

func TestBudgetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", asActor(testAdmin), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{"repair_order_id":"ro-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("validation errors surface field names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		v := &pkg.ValidationError{}
		v.Add("labor_cost", "must be a non-negative number")
		uc.EXPECT().Create(gomock.Any(), testAdmin, gomock.Any()).Return(entities.Budget{}, v)

		r := gin.New()
		r.POST("/v1/budgets", asActor(testAdmin), h.Create)

		body := `{"repair_order_id":"ro-1","labor_cost":"abc","parts_cost":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp struct {
			Code   string `json:"code"`
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Code != "VALIDATION_ERROR" || len(resp.Fields) != 1 || resp.Fields[0].Field != "labor_cost" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Create(gomock.Any(), testAdmin, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.RepairOrderID != "ro-1" || in.LaborCost != "80.00" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Budget{
					ID:            "b-1",
					RepairOrderID: "ro-1",
					TotalCost:     decimal.RequireFromString("200.50"),
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/budgets", asActor(testAdmin), h.Create)

		body := `{"repair_order_id":"ro-1","labor_cost":"80.00","parts_cost":"120.50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden for technicians", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		tech := entities.Actor{ID: "tech-1", Role: entities.UserRoleTechnician}
		uc.EXPECT().Approve(gomock.Any(), tech, "b-1").Return(entities.Budget{}, usecase.ErrForbidden)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/approve", asActor(tech), h.Approve)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "b-9").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/approve", asActor(testAdmin), h.Approve)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-9/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, "b-1").Return(entities.Budget{ID: "b-1", Approved: true}, nil)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/approve", asActor(testAdmin), h.Approve)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Approved bool `json:"approved"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Approved {
			t.Fatalf("expected approved in body: %s", w.Body.String())
		}
	})
}
