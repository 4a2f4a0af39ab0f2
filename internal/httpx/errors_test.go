package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/kv"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/user"
	"github.com/MikeMC777/foodcart/internal/validate"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{validate.New("phone", "bad"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", validate.New("email", "bad")), http.StatusBadRequest},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
		{user.ErrNotRegistered, http.StatusNotFound},
		{user.ErrNoAccount, http.StatusNotFound},
		{product.ErrNotFound, http.StatusNotFound},
		{cart.ErrBusy, http.StatusConflict},
		{order.ErrEmptyCart, http.StatusConflict},
		{order.ErrMissingShippingInfo, http.StatusConflict},
		{fmt.Errorf("%w: set: disk", kv.ErrStorage), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestAbort_HidesStorageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Abort(c, fmt.Errorf("%w: set \"cart\": disk I/O error", kv.ErrStorage))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"storage unavailable, please retry"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ridKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}
