package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/catalog"
	deliveryControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/delivery"
	orderControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/order"
	paymentControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/payment"
	userControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/user"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Access control sits
// at the edge proxy.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	{
		// ──────────────── Catalog management ────────────────
		admin.POST("/categories", catalogControllers.CreateCategory(db))
		admin.PUT("/categories/:id", catalogControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", catalogControllers.DeleteCategory(db))
		admin.POST("/categories/:id/restore", catalogControllers.RestoreCategory(db))

		admin.POST("/products", catalogControllers.CreateProduct(db))
		admin.GET("/products/out-of-stock", catalogControllers.GetOutOfStock(db))
		admin.GET("/products/export", catalogControllers.ExportProductsToExcel(db))
		admin.PUT("/products/:id", catalogControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", catalogControllers.DeleteProduct(db))
		admin.POST("/products/:id/restore", catalogControllers.RestoreProduct(db))

		// ──────────────── Orders ────────────────
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/stats", orderControllers.GetOrderStats(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
		admin.GET("/orders/:orderID", orderControllers.GetOrderByID(db))
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatus(db))
		admin.DELETE("/orders/:orderID", orderControllers.DeleteOrder(db))
		admin.POST("/orders/:orderID/restore", orderControllers.RestoreOrder(db))

		// ──────────────── Payments ────────────────
		admin.POST("/orders/:orderID/payments", paymentControllers.RecordPayment(db))
		admin.GET("/orders/:orderID/payments", paymentControllers.GetOrderPayments(db))
		admin.POST("/payments/:paymentID/refund", paymentControllers.RefundPayment(db))

		// ──────────────── Deliveries ────────────────
		admin.POST("/orders/:orderID/delivery", deliveryControllers.AssignDelivery(db))
		admin.PUT("/deliveries/:deliveryID/picked-up", deliveryControllers.MarkPickedUp(db))
		admin.PUT("/deliveries/:deliveryID/delivered", deliveryControllers.MarkDelivered(db))
		admin.GET("/agents/:agentID/deliveries", deliveryControllers.GetAgentDeliveries(db))

		// ──────────────── Users ────────────────
		admin.GET("/users", userControllers.GetUsers(db))
	}
}
