package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/middleware"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/repository"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/store"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// queryMode lets admin listings opt into seeing deleted rows via ?mode=.
func queryMode(c *gin.Context) softdelete.Mode {
	switch c.Query("mode") {
	case "deleted":
		return softdelete.Deleted
	case "all":
		return softdelete.All
	default:
		return softdelete.Live
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrders(db)
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := repo.ByUser(userID, softdelete.Live)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders?status=&from=&to=&mode=
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrders(db)
	return func(c *gin.Context) {
		mode := queryMode(c)

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			orders, err := repo.ByStatus(mapped, mode)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, orders)
			return
		}

		if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
			fromT, err1 := time.Parse("2006-01-02", from)
			toT, err2 := time.Parse("2006-01-02", to)
			if err1 != nil || err2 != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
				return
			}
			orders, err := repo.CreatedBetween(fromT, toT.Add(24*time.Hour), mode)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, orders)
			return
		}

		orders, err := store.FindBy[models.Order](db, store.Query{OrderBy: "created_at DESC"}, mode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — accepts a numeric id or an order reference.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrders(db)
	return func(c *gin.Context) {
		id := c.Param("orderID")
		order, err := repo.ByReference(id, queryMode(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if order == nil {
			if _, convErr := strconv.ParseUint(id, 10, 64); convErr == nil {
				order, err = findOrderAny(db, id, queryMode(c))
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
			}
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /admin/orders/:orderID — soft delete, the order stays restorable.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := findOrderAny(db, c.Param("orderID"), softdelete.Live)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err := softdelete.Delete(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// POST /admin/orders/:orderID/restore
func RestoreOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := findOrderAny(db, c.Param("orderID"), softdelete.Deleted)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err := softdelete.Restore(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to restore order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders/stats
func GetOrderStats(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrders(db)
	return func(c *gin.Context) {
		counts, err := repo.CountByStatus()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		revenue, err := repo.RevenueByStatus()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"counts": counts, "revenue": revenue})
	}
}

func findOrderAny(db *gorm.DB, rawID string, mode softdelete.Mode) (*models.Order, error) {
	var order models.Order
	err := db.Scopes(softdelete.Scope(mode)).First(&order, "id = ?", rawID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
