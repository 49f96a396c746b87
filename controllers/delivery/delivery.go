package deliveryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/services/delivery"
)

type AssignDeliveryInput struct {
	AgentID uint `json:"agent_id" binding:"required"`
}

func respondDeliveryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, delivery.ErrOrderNotFound),
		errors.Is(err, delivery.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, delivery.ErrNotDeliveryAgent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, delivery.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delivery operation failed"})
	}
}

// POST /admin/orders/:orderID/delivery
func AssignDelivery(db *gorm.DB) gin.HandlerFunc {
	svc := delivery.NewService(db)
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var input AssignDeliveryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		d, err := svc.Assign(uint(orderID), input.AgentID)
		if err != nil {
			respondDeliveryError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

// PUT /admin/deliveries/:deliveryID/picked-up
func MarkPickedUp(db *gorm.DB) gin.HandlerFunc {
	svc := delivery.NewService(db)
	return func(c *gin.Context) {
		deliveryID, err := strconv.ParseUint(c.Param("deliveryID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
			return
		}
		d, err := svc.MarkPickedUp(uint(deliveryID))
		if err != nil {
			respondDeliveryError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// PUT /admin/deliveries/:deliveryID/delivered
func MarkDelivered(db *gorm.DB) gin.HandlerFunc {
	svc := delivery.NewService(db)
	return func(c *gin.Context) {
		deliveryID, err := strconv.ParseUint(c.Param("deliveryID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
			return
		}
		d, err := svc.MarkDelivered(uint(deliveryID))
		if err != nil {
			respondDeliveryError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// GET /admin/agents/:agentID/deliveries
func GetAgentDeliveries(db *gorm.DB) gin.HandlerFunc {
	svc := delivery.NewService(db)
	return func(c *gin.Context) {
		agentID, err := strconv.ParseUint(c.Param("agentID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent id"})
			return
		}
		deliveries, err := svc.ByAgent(uint(agentID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}
