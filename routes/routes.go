package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the catalog, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public catalog routes
	SetupCatalogRoutes(r, db)

	// 2️⃣ User routes (identity resolved from the edge proxy header)
	SetupUserRoutes(r, db)

	// 3️⃣ Admin routes
	SetupAdminRoutes(r, db)
}
