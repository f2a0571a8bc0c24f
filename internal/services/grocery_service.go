package services

import (
	"errors"
	"fmt"

	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrNotCartOwner     = errors.New("cart item belongs to another user")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type GroceryService struct {
	db *gorm.DB
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

func (s *GroceryService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (s *GroceryService) GetProduct(id int) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GroceryService) ListProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("category = ?", category).Order("id ASC").Find(&products).Error
	return products, err
}

func (s *GroceryService) GetCart(email string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Where("email = ?", email).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (s *GroceryService) AddToCart(email string, productID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.GetProduct(productID); err != nil {
		return nil, err
	}

	item := models.CartItem{
		ID:        uuid.New(),
		Email:     email,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &item, nil
}

func (s *GroceryService) UpdateCartItem(email string, id uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item models.CartItem
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.Email != email {
		return nil, ErrNotCartOwner
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &item, nil
}

func (s *GroceryService) DeleteCartItem(email string, id uuid.UUID) error {
	result := s.db.Where("id = ? AND email = ?", id, email).Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// SeedProducts loads the store catalog. Safe to run on every boot: existing
// rows are left untouched.
func (s *GroceryService) SeedProducts(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}
