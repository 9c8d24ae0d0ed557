package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"gorm.io/gorm"
)

// GormProductStore reads products through the shared GORM handle.
type GormProductStore struct {
	DB *gorm.DB
}

func (s *GormProductStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GormOrderStore persists orders through the shared GORM handle.
type GormOrderStore struct {
	DB *gorm.DB
}

func (s *GormOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrDuplicateOrderNumber
		}
		return err
	}
	return nil
}

// isUniqueViolation matches the Postgres 23505 error without binding the
// store contract to a driver error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
