package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servitec/internal/adapter/http/handlers/mocks"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("full catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1", Stock: 10}, {ID: "p-2", Stock: 0}}, nil)

		r := gin.New()
		r.GET("/v1/products", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID          string `json:"id"`
			StockStatus string `json:"stock_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp) != 2 || resp[0].StockStatus != "IN_STOCK" || resp[1].StockStatus != "SOLD_OUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("low stock filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		uc.EXPECT().LowStock(gomock.Any()).Return([]entities.Product{{ID: "p-2", Stock: 2}}, nil)

		r := gin.New()
		r.GET("/v1/products", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/products?low_stock=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp) != 1 || resp[0].ID != "p-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInventoryHandler_Restock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.PATCH("/v1/products/:id/restock", h.Restock)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/p-1/restock", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("forbidden for technicians", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		tech := entities.Actor{ID: "tech-1", Role: entities.UserRoleTechnician}
		uc.EXPECT().Restock(gomock.Any(), tech, "p-1", 5).Return(entities.Product{}, usecase.ErrForbidden)

		r := gin.New()
		r.PATCH("/v1/products/:id/restock", asActor(tech), h.Restock)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/p-1/restock", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("restocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		uc.EXPECT().Restock(gomock.Any(), testAdmin, "p-1", 5).Return(entities.Product{ID: "p-1", Stock: 8}, nil)

		r := gin.New()
		r.PATCH("/v1/products/:id/restock", asActor(testAdmin), h.Restock)

		req := httptest.NewRequest(http.MethodPatch, "/v1/products/p-1/restock", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Stock       int    `json:"stock"`
			StockStatus string `json:"stock_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Stock != 8 || resp.StockStatus != "IN_STOCK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
