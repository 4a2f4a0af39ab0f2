package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/kv"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/user"
	"github.com/MikeMC777/foodcart/internal/validate"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: cart is empty
	Error string `json:"error"`
}

// Status maps a manager error to its HTTP status.
func Status(err error) int {
	var ve *validate.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrNotRegistered),
		errors.Is(err, user.ErrNoAccount),
		errors.Is(err, product.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrBusy),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMissingShippingInfo):
		return http.StatusConflict
	case errors.Is(err, kv.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err as an HTTPError. Storage and unknown failures are not
// described to the client beyond a retry hint.
func Abort(c *gin.Context, err error) {
	code := Status(err)
	msg := err.Error()
	switch code {
	case http.StatusServiceUnavailable:
		msg = "storage unavailable, please retry"
	case http.StatusInternalServerError:
		msg = "internal error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, HTTPError{Error: msg})
}
