package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// ByRole matches against the JSON-serialized roles column.
func (r *Users) ByRole(role models.Role, mode softdelete.Mode) ([]models.User, error) {
	var users []models.User
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("roles LIKE ?", fmt.Sprintf(`%%"%s"%%`, role)).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *Users) ByEmail(email string, mode softdelete.Mode) (*models.User, error) {
	var user models.User
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("email = ?", email).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
