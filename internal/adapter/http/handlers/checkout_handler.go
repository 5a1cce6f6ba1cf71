package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "servitec/internal/adapter/http/dto/request"
	response "servitec/internal/adapter/http/dto/response"
	"servitec/internal/usecase"
	"servitec/pkg"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles counter sales: cart checkout and the resulting
// receipts.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout prices the requested lines, collects the payment and records the
// sale. Stock is decremented as part of the same request.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.Checkout(c.Request.Context(), payload.ToLines(), payload.ToPayment(), payload.ToCustomer())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

func (h *CheckoutHandler) GetByID(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(sale))
}

func (h *CheckoutHandler) List(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	sales, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSales(sales))
}

func mapCheckoutError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCardPaymentRejected):
		return pkg.NewDomainErrorSimple("CARD_PAYMENT_REJECTED", "Card payment was rejected by the provider", http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}
