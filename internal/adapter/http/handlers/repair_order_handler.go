package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "servitec/internal/adapter/http/dto/request"
	response "servitec/internal/adapter/http/dto/response"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"
	"servitec/pkg"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid repair order payload", http.StatusBadRequest)

// RepairOrderHandler handles HTTP requests for the repair order lifecycle.
// The actor resolved by the auth middleware is passed explicitly into every
// usecase call.

type RepairOrderHandler struct {
	usecase usecase.IRepairOrderUseCase
}

func NewRepairOrderHandler(uc usecase.IRepairOrderUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{usecase: uc}
}

func (h *RepairOrderHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateRepairOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), actor, payload.ToEntity())
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRepairOrder(order))
}

func (h *RepairOrderHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrders(orders))
}

func (h *RepairOrderHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrder(order))
}

func (h *RepairOrderHandler) AdvanceStatus(c *gin.Context) {
	h.patchOrder(c, func(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error) {
		return h.usecase.AdvanceStatus(ctx, actor, id)
	})
}

func (h *RepairOrderHandler) Cancel(c *gin.Context) {
	h.patchOrder(c, func(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error) {
		return h.usecase.Cancel(ctx, actor, id)
	})
}

func (h *RepairOrderHandler) patchOrder(
	c *gin.Context,
	updater func(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := updater(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrder(order))
}

func (h *RepairOrderHandler) UpdateDiagnosis(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateDiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateDiagnosis(c.Request.Context(), actor, c.Param("id"), c.Param("device_id"), payload.Diagnosis)
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrder(order))
}

func mapRepairOrderError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Repair order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found in this order", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
