package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	AuthHandler    *AuthHTTP
	ProfileHandler *ProfileHTTP
	PrefsHandler   *PrefsHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	products := e.Group("/api/products")
	products.GET("", d.CatalogHandler.ListProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/categories", d.CatalogHandler.Categories)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	cart := e.Group("/api/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("", d.CartHandler.UpdateQuantity)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.DELETE("/items", d.CartHandler.RemoveItem)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Signup)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.POST("/forgot", d.AuthHandler.ForgotPassword)

	profile := e.Group("/api/profile")
	profile.GET("", d.ProfileHandler.GetProfile)
	profile.PUT("", d.ProfileHandler.UpdateProfile)
	profile.POST("/password", d.ProfileHandler.ChangePassword)
	profile.DELETE("", d.ProfileHandler.DeleteAccount)
	profile.GET("/addresses", d.ProfileHandler.ListAddresses)
	profile.POST("/addresses", d.ProfileHandler.AddAddress)
	profile.PUT("/addresses/:id/default", d.ProfileHandler.SetDefaultAddress)
	profile.DELETE("/addresses/:id", d.ProfileHandler.DeleteAddress)
	profile.GET("/settings", d.ProfileHandler.GetSettings)
	profile.PUT("/settings", d.ProfileHandler.SaveSettings)

	prefs := e.Group("/api/prefs")
	prefs.GET("/currency", d.PrefsHandler.GetCurrency)
	prefs.PUT("/currency", d.PrefsHandler.SetCurrency)
	prefs.GET("/visited", d.PrefsHandler.GetVisited)
	prefs.POST("/visited", d.PrefsHandler.MarkVisited)
}
