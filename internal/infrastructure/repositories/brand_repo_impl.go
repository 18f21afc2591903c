package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	m := r.toModel(brand)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	brand.ID = m.ID
	brand.CreatedAt = m.CreatedAt
	brand.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *BrandRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error) {
	var ms []models.Brand
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Brand, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	var profile *string
	if len(brand.Profile) > 0 {
		s := string(brand.Profile)
		profile = &s
	}
	updates := map[string]interface{}{
		"name":        brand.Name,
		"website_url": brand.WebsiteURL,
		"profile":     profile,
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Brand{}).
		Where("id = ?", brand.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BrandRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Brand{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *BrandRepository) toEntity(m *models.Brand) *entities.Brand {
	var profile json.RawMessage
	if m.Profile != nil {
		profile = json.RawMessage(*m.Profile)
	}
	return &entities.Brand{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		WebsiteURL: m.WebsiteURL,
		Profile:    profile,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *BrandRepository) toModel(e *entities.Brand) *models.Brand {
	var profile *string
	if len(e.Profile) > 0 {
		s := string(e.Profile)
		profile = &s
	}
	return &models.Brand{
		ID:         e.ID,
		UserID:     e.UserID,
		Name:       e.Name,
		WebsiteURL: e.WebsiteURL,
		Profile:    profile,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
