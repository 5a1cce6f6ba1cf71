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

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for repair budgets and their approval
// workflow.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) GetByID(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// GetByRepairOrder resolves a budget through its repair order, the lookup the
// order detail screen uses.
func (h *BudgetHandler) GetByRepairOrder(c *gin.Context) {
	budget, err := h.usecase.GetByRepairOrderID(c.Request.Context(), c.Query("repair_order_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) Approve(c *gin.Context) {
	h.patchApproval(c, h.usecase.Approve)
}

func (h *BudgetHandler) Reject(c *gin.Context) {
	h.patchApproval(c, h.usecase.Reject)
}

func (h *BudgetHandler) patchApproval(
	c *gin.Context,
	updater func(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	budget, err := updater(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidRepairOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "Budget already exists for this repair order", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
