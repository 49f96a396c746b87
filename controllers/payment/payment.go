package paymentControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/services/payment"
)

type RecordPaymentInput struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Method         string          `json:"method" binding:"required"`
	TransactionRef string          `json:"transaction_ref"`
	Failed         bool            `json:"failed"`
}

// POST /admin/orders/:orderID/payments
func RecordPayment(db *gorm.DB) gin.HandlerFunc {
	svc := payment.NewService(db)
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var input RecordPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		record := svc.Record
		if input.Failed {
			record = svc.RecordFailed
		}
		pay, err := record(uint(orderID), input.Amount, input.Method, input.TransactionRef)
		if err != nil {
			switch {
			case errors.Is(err, payment.ErrInvalidAmount):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, payment.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			}
			return
		}
		c.JSON(http.StatusCreated, pay)
	}
}

// POST /admin/payments/:paymentID/refund
func RefundPayment(db *gorm.DB) gin.HandlerFunc {
	svc := payment.NewService(db)
	return func(c *gin.Context) {
		paymentID, err := strconv.ParseUint(c.Param("paymentID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
			return
		}
		pay, err := svc.Refund(uint(paymentID))
		if err != nil {
			if errors.Is(err, payment.ErrPaymentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refund payment"})
			return
		}
		c.JSON(http.StatusOK, pay)
	}
}

// GET /admin/orders/:orderID/payments
func GetOrderPayments(db *gorm.DB) gin.HandlerFunc {
	svc := payment.NewService(db)
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		payments, err := svc.ByOrder(uint(orderID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}
