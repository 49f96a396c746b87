package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/cart"
	orderControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/order"
	userControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/user"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireUser)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))               // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))              // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))    // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))          // DELETE /user/cart
			cartGroup.POST("/checkout", cartControllers.Checkout(db))         // POST /user/cart/checkout
		}

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrders(db)) // GET /user/orders
	}
}
