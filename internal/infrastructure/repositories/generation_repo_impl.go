package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/infrastructure/models"
)

type GenerationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

func (r *GenerationRepository) Create(ctx context.Context, generation *entities.Generation) error {
	m := r.toModel(generation)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	generation.ID = m.ID
	generation.CreatedAt = m.CreatedAt
	return nil
}

func (r *GenerationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Generation, error) {
	var m models.Generation
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *GenerationRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Generation, error) {
	var ms []models.Generation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Generation, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *GenerationRepository) Update(ctx context.Context, generation *entities.Generation) error {
	updates := map[string]interface{}{
		"content": string(generation.Content),
		"status":  string(generation.Status),
		"version": generation.Version,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Generation{}).
		Where("id = ?", generation.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GenerationRepository) CountByBrands(ctx context.Context, brandIDs []uuid.UUID) (int64, error) {
	if len(brandIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Generation{}).
		Where("brand_id IN ?", brandIDs).
		Count(&count).Error
	return count, err
}

func (r *GenerationRepository) toEntity(m *models.Generation) *entities.Generation {
	return &entities.Generation{
		ID:          m.ID,
		BrandID:     m.BrandID,
		FlowID:      m.FlowID,
		VariationID: m.VariationID,
		TemplateID:  m.TemplateID,
		Content:     []byte(m.Content),
		Status:      entities.GenerationStatus(m.Status),
		Version:     m.Version,
		Language:    m.Language,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *GenerationRepository) toModel(e *entities.Generation) *models.Generation {
	return &models.Generation{
		ID:          e.ID,
		BrandID:     e.BrandID,
		FlowID:      e.FlowID,
		VariationID: e.VariationID,
		TemplateID:  e.TemplateID,
		Content:     string(e.Content),
		Status:      string(e.Status),
		Version:     e.Version,
		Language:    e.Language,
		CreatedAt:   e.CreatedAt,
	}
}

// GenerationVersionRepository appends immutable content snapshots.
type GenerationVersionRepository struct {
	db *gorm.DB
}

func NewGenerationVersionRepository(db *gorm.DB) *GenerationVersionRepository {
	return &GenerationVersionRepository{db: db}
}

func (r *GenerationVersionRepository) Create(ctx context.Context, version *entities.GenerationVersion) error {
	m := &models.GenerationVersion{
		ID:           version.ID,
		GenerationID: version.GenerationID,
		Content:      string(version.Content),
		CreatedAt:    version.CreatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	version.ID = m.ID
	version.CreatedAt = m.CreatedAt
	return nil
}

func (r *GenerationVersionRepository) ListByGeneration(ctx context.Context, generationID uuid.UUID) ([]*entities.GenerationVersion, error) {
	var ms []models.GenerationVersion
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("generation_id = ?", generationID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.GenerationVersion, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.GenerationVersion{
			ID:           ms[i].ID,
			GenerationID: ms[i].GenerationID,
			Content:      []byte(ms[i].Content),
			CreatedAt:    ms[i].CreatedAt,
		})
	}
	return items, nil
}
