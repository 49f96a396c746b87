package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/controllers/catalog"
)

// SetupCatalogRoutes registers the public "/catalog/*" endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/categories", catalogControllers.GetCategories(db))           // GET /catalog/categories
		catalog.GET("/categories/:id", catalogControllers.GetCategoryByID(db))     // GET /catalog/categories/:id
		catalog.GET("/products", catalogControllers.GetProducts(db))               // GET /catalog/products
		catalog.GET("/products/top-sellers", catalogControllers.GetTopSellers(db)) // GET /catalog/products/top-sellers
		catalog.GET("/products/:id", catalogControllers.GetProductByID(db))        // GET /catalog/products/:id
	}
}
