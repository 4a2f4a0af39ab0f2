package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/foodcart/docs"
	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/httpx"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/shop"
	"github.com/MikeMC777/foodcart/internal/user"
	"github.com/MikeMC777/foodcart/internal/validate"
)

func newRouter(s *shop.Shop) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(nil))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/register", registerHandler(s))
	r.POST("/auth/login", loginHandler(s))
	r.POST("/auth/logout", logoutHandler(s))
	r.GET("/me", meHandler(s))
	r.PUT("/me/shipping", updateShippingHandler(s))

	r.GET("/products", listProductsHandler(s))
	r.GET("/products/:id", getProductHandler(s))

	r.GET("/cart", getCartHandler(s))
	r.POST("/cart/items", addCartItemHandler(s))
	r.DELETE("/cart/items/:id", removeCartItemHandler(s))

	r.POST("/orders", placeOrderHandler(s))
	r.GET("/orders", listOrdersHandler(s))
	return r
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httpx.Abort(c, validate.New("", "invalid JSON"))
		return false
	}
	return true
}

// registerHandler godoc
// @Summary      Register the device account
// @Description  Replaces any account already stored on this device.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      user.RegisterRequest  true  "account"
// @Success      201   {object}  user.UserResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      503   {object}  httpx.HTTPError
// @Router       /auth/register [post]
func registerHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.RegisterRequest
		if !bindJSON(c, &in) {
			return
		}
		u, err := s.Accounts.Register(c.Request.Context(), in.Account, in.Email, in.Password, in.ConfirmPassword)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, s.Accounts.ToResponse(u))
	}
}

// loginHandler godoc
// @Summary  Log in with account or email
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      user.LoginRequest  true  "credentials"
// @Success  200   {object}  user.UserResponse
// @Failure  400   {object}  httpx.HTTPError
// @Failure  401   {object}  httpx.HTTPError
// @Failure  404   {object}  httpx.HTTPError
// @Router   /auth/login [post]
func loginHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if !bindJSON(c, &in) {
			return
		}
		u, err := s.Accounts.Login(c.Request.Context(), in.Identifier, in.Password)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, s.Accounts.ToResponse(u))
	}
}

// logoutHandler godoc
// @Summary  Log out (drops the cart, keeps the account)
// @Tags     auth
// @Success  204
// @Failure  503  {object}  httpx.HTTPError
// @Router   /auth/logout [post]
func logoutHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.Accounts.Logout(c.Request.Context()); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// meHandler godoc
// @Summary  Current account
// @Tags     account
// @Produce  json
// @Success  200  {object}  user.UserResponse
// @Failure  404  {object}  httpx.HTTPError
// @Router   /me [get]
func meHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := s.Accounts.Current(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, s.Accounts.ToResponse(u))
	}
}

// updateShippingHandler godoc
// @Summary  Set phone and address used for delivery
// @Tags     account
// @Accept   json
// @Produce  json
// @Param    body  body      user.ShippingRequest  true  "shipping info"
// @Success  200   {object}  user.UserResponse
// @Failure  400   {object}  httpx.HTTPError
// @Failure  404   {object}  httpx.HTTPError
// @Router   /me/shipping [put]
func updateShippingHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.ShippingRequest
		if !bindJSON(c, &in) {
			return
		}
		u, err := s.Accounts.UpdateShippingInfo(c.Request.Context(), in.Phone, in.Address)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, s.Accounts.ToResponse(u))
	}
}

// listProductsHandler godoc
// @Summary  Browse the catalog
// @Tags     products
// @Produce  json
// @Param    category  query  string  false  "food or fruit"
// @Param    q         query  string  false  "name search"
// @Success  200  {array}   product.Product
// @Failure  400  {object}  httpx.HTTPError
// @Router   /products [get]
func listProductsHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat := product.Category(strings.ToLower(strings.TrimSpace(c.Query("category"))))
		if cat != "" && cat != product.Food && cat != product.Fruit {
			httpx.Abort(c, validate.New("category", "must be food or fruit"))
			return
		}
		c.JSON(http.StatusOK, s.Catalog.List(product.Query{Category: cat, Q: c.Query("q")}))
	}
}

// getProductHandler godoc
// @Summary  Catalog product by id
// @Tags     products
// @Produce  json
// @Param    id   path      string  true  "product id"
// @Success  200  {object}  product.Product
// @Failure  404  {object}  httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.Catalog.GetByID(c.Param("id"))
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// getCartHandler godoc
// @Summary  Cart contents and total
// @Tags     cart
// @Produce  json
// @Success  200  {object}  cart.CartResponse
// @Failure  503  {object}  httpx.HTTPError
// @Router   /cart [get]
func getCartHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.Carts.Items(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.ToResponse(items))
	}
}

// addCartItemHandler godoc
// @Summary      Add one unit of a product
// @Description  Returns 409 while another add is still being saved.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      cart.AddItemRequest  true  "product"
// @Success      200   {object}  cart.CartResponse
// @Failure      404   {object}  httpx.HTTPError
// @Failure      409   {object}  httpx.HTTPError
// @Router       /cart/items [post]
func addCartItemHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddItemRequest
		if !bindJSON(c, &in) {
			return
		}
		items, err := s.AddProduct(c.Request.Context(), in.ProductID)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.ToResponse(items))
	}
}

// removeCartItemHandler godoc
// @Summary  Remove a product line from the cart
// @Tags     cart
// @Produce  json
// @Param    id   path      string  true  "product id"
// @Success  200  {object}  cart.CartResponse
// @Failure  503  {object}  httpx.HTTPError
// @Router   /cart/items/{id} [delete]
func removeCartItemHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.Carts.Remove(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.ToResponse(items))
	}
}

// placeOrderHandler godoc
// @Summary  Place the cart as an order
// @Tags     orders
// @Produce  json
// @Success  201  {object}  order.OrderResponse
// @Failure  409  {object}  httpx.HTTPError
// @Failure  503  {object}  httpx.HTTPError
// @Router   /orders [post]
func placeOrderHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := s.PlaceOrder(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, order.ToResponse(*o))
	}
}

// listOrdersHandler godoc
// @Summary  Order history, newest first
// @Tags     orders
// @Produce  json
// @Success  200  {object}  order.ListResponse
// @Failure  503  {object}  httpx.HTTPError
// @Router   /orders [get]
func listOrdersHandler(s *shop.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders.List(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, order.ToListResponse(orders))
	}
}
