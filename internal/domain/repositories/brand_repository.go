package repositories

import (
	"context"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
)

// BrandRepository defines brand profile data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ProductRepository defines product catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GenerationRepository defines generated-copy data operations
type GenerationRepository interface {
	Create(ctx context.Context, generation *entities.Generation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Generation, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Generation, error)
	Update(ctx context.Context, generation *entities.Generation) error
	CountByBrands(ctx context.Context, brandIDs []uuid.UUID) (int64, error)
}

// GenerationVersionRepository stores immutable content snapshots.
// Versions are append-only.
type GenerationVersionRepository interface {
	Create(ctx context.Context, version *entities.GenerationVersion) error
	ListByGeneration(ctx context.Context, generationID uuid.UUID) ([]*entities.GenerationVersion, error)
}
