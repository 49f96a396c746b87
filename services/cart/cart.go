// Package cart implements the cart workflow: line mutation against live
// stock and the atomic conversion of a cart into an order.
package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
)

// Business-rule failures. Callers branch on these with errors.Is; anything
// else coming out of the service is a storage error.
var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrCartNotFound      = errors.New("no active cart")
	ErrItemNotFound      = errors.New("item not in cart")
	ErrEmptyCart         = errors.New("cart is empty")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetOrCreateCart returns the user's most recently modified cart, creating
// an empty one on first access. Repeated calls without mutation in between
// return the same cart.
func (s *Service) GetOrCreateCart(userID uint) (*models.Cart, error) {
	cart, err := s.activeCart(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}
	fresh := models.Cart{UserID: userID}
	if err := s.db.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// activeCart is the latest cart by modification time; it never creates one.
func (s *Service) activeCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts quantity units of a product into the user's cart. When the
// product is already in the cart the quantities merge, and the combined
// quantity is what gets validated against current stock; on failure the
// existing line keeps its prior quantity.
func (s *Service) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	var line models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&line).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if quantity > product.Stock {
			return nil, ErrInsufficientStock
		}
		line = models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
	case err != nil:
		return nil, err
	default:
		combined := line.Quantity + quantity
		if combined > product.Stock {
			return nil, ErrInsufficientStock
		}
		line.Quantity = combined
		line.AddedAt = time.Now()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&line).Error; err != nil {
			return err
		}
		return s.touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// UpdateQuantity replaces a line's quantity, validated against current
// live stock.
func (s *Service) UpdateQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.activeCart(userID)
	if err != nil {
		return nil, err
	}

	var line models.CartItem
	err = s.db.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", line.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	line.Quantity = quantity
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&line).Error; err != nil {
			return err
		}
		return s.touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// RemoveItem detaches and deletes a line from the user's active cart.
func (s *Service) RemoveItem(userID, itemID uint) error {
	cart, err := s.activeCart(userID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return s.touch(tx, cart.ID)
	})
}

// ClearCart empties the active cart, however many lines it holds.
func (s *Service) ClearCart(userID uint) error {
	cart, err := s.activeCart(userID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return s.touch(tx, cart.ID)
	})
}

// Checkout converts the active cart into an order.
//
// Pass one validates every line against current live stock without writing
// anything; any short line fails the whole call. Pass two runs in a single
// transaction: each product is re-read under a row lock and re-checked, an
// order-item snapshot is taken at the current product price, stock is
// decremented, the order is created with the 2dp-rounded total, and the
// cart's lines are deleted. Either all of it lands or none of it does.
func (s *Service) Checkout(userID uint, shippingAddress string) (*models.Order, error) {
	cart, err := s.activeCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Validation pass: point-in-time, no reservation.
	for _, line := range cart.Items {
		var product models.Product
		if err := s.db.First(&product, "id = ?", line.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		if line.Quantity > product.Stock {
			return nil, ErrInsufficientStock
		}
	}

	var order models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart.Items))

		for _, line := range cart.Items {
			var product models.Product
			if err := s.lockRow(tx).First(&product, "id = ?", line.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return ErrInsufficientStock
			}

			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order = models.Order{
			Reference:       newReference(),
			UserID:          userID,
			Items:           items,
			Total:           total.Round(2),
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			ShippingAddress: shippingAddress,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return s.touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// touch bumps the cart's modification timestamp.
func (s *Service) touch(tx *gorm.DB, cartID uint) error {
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}

// lockRow adds SELECT ... FOR UPDATE where the dialect has it; sqlite
// serializes writers on its own.
func (s *Service) lockRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// newReference builds a unique order reference, e.g. 20250908130500-<uuid>.
func newReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
