package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"servitec/internal/adapter/http/middleware"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"
	"servitec/pkg"
)

// requireActor pulls the authenticated actor out of the request context and
// writes the 401 itself when the middleware did not resolve one.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		e := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing credentials", http.StatusUnauthorized)
		c.JSON(e.HTTPStatus, e.ToHTTPError())
	}
	return actor, ok
}

// mapSharedError translates the error kinds every usecase can produce.
// Handler-specific switches fall back to it before giving up with a 500.
func mapSharedError(err error) (*pkg.AppError, bool) {
	var v *pkg.ValidationError
	switch {
	case errors.As(err, &v):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden), true
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "The order cannot move to the requested status", http.StatusConflict), true
	case errors.Is(err, entities.ErrOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product is out of stock", http.StatusConflict), true
	case errors.Is(err, entities.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "The cart has no items", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInsufficientPayment):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_PAYMENT", "Received amount is less than the total", http.StatusUnprocessableEntity), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
