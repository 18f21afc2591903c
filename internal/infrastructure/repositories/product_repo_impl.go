package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := r.toModel(product)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProductRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Product, error) {
	var ms []models.Product
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description.Ptr(),
		"price":       product.Price.Ptr(),
		"image_url":   product.ImageURL.Ptr(),
		"external_id": product.ExternalID.Ptr(),
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		BrandID:     m.BrandID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		Price:       null.StringFromPtr(m.Price),
		ImageURL:    null.StringFromPtr(m.ImageURL),
		ExternalID:  null.StringFromPtr(m.ExternalID),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ProductRepository) toModel(e *entities.Product) *models.Product {
	return &models.Product{
		ID:          e.ID,
		BrandID:     e.BrandID,
		Name:        e.Name,
		Description: e.Description.Ptr(),
		Price:       e.Price.Ptr(),
		ImageURL:    e.ImageURL.Ptr(),
		ExternalID:  e.ExternalID.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
