package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/domain/repositories"
	"mailcraft.backend/pkg/utils"
)

// ContentUsecase handles the brand / product / generation domain. All
// access is scoped to the acting user's brands.
type ContentUsecase struct {
	brandRepo      repositories.BrandRepository
	productRepo    repositories.ProductRepository
	generationRepo repositories.GenerationRepository
	versionRepo    repositories.GenerationVersionRepository
	uow            repositories.UnitOfWork
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(
	brandRepo repositories.BrandRepository,
	productRepo repositories.ProductRepository,
	generationRepo repositories.GenerationRepository,
	versionRepo repositories.GenerationVersionRepository,
	uow repositories.UnitOfWork,
) *ContentUsecase {
	return &ContentUsecase{
		brandRepo:      brandRepo,
		productRepo:    productRepo,
		generationRepo: generationRepo,
		versionRepo:    versionRepo,
		uow:            uow,
	}
}

// CreateBrand creates a brand owned by the actor.
func (u *ContentUsecase) CreateBrand(ctx context.Context, actorID uuid.UUID, brand *entities.Brand) error {
	brand.ID = utils.GenerateUUIDv7()
	brand.UserID = actorID
	return u.brandRepo.Create(ctx, brand)
}

// ListBrands lists the actor's brands.
func (u *ContentUsecase) ListBrands(ctx context.Context, actorID uuid.UUID) ([]*entities.Brand, error) {
	return u.brandRepo.ListByUser(ctx, actorID)
}

// UpdateBrand updates a brand after an ownership check.
func (u *ContentUsecase) UpdateBrand(ctx context.Context, actorID uuid.UUID, brand *entities.Brand) error {
	if _, err := u.ownedBrand(ctx, actorID, brand.ID); err != nil {
		return err
	}
	return u.brandRepo.Update(ctx, brand)
}

// DeleteBrand deletes a brand after an ownership check.
func (u *ContentUsecase) DeleteBrand(ctx context.Context, actorID, brandID uuid.UUID) error {
	if _, err := u.ownedBrand(ctx, actorID, brandID); err != nil {
		return err
	}
	return u.brandRepo.Delete(ctx, brandID)
}

// CreateProduct adds a product to one of the actor's brands.
func (u *ContentUsecase) CreateProduct(ctx context.Context, actorID uuid.UUID, product *entities.Product) error {
	if _, err := u.ownedBrand(ctx, actorID, product.BrandID); err != nil {
		return err
	}
	product.ID = utils.GenerateUUIDv7()
	return u.productRepo.Create(ctx, product)
}

// ListProducts lists a brand's products after an ownership check.
func (u *ContentUsecase) ListProducts(ctx context.Context, actorID, brandID uuid.UUID) ([]*entities.Product, error) {
	if _, err := u.ownedBrand(ctx, actorID, brandID); err != nil {
		return nil, err
	}
	return u.productRepo.ListByBrand(ctx, brandID)
}

// UpdateProduct updates a product after an ownership check.
func (u *ContentUsecase) UpdateProduct(ctx context.Context, actorID uuid.UUID, product *entities.Product) error {
	existing, err := u.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if _, err := u.ownedBrand(ctx, actorID, existing.BrandID); err != nil {
		return err
	}
	product.BrandID = existing.BrandID
	return u.productRepo.Update(ctx, product)
}

// DeleteProduct deletes a product after an ownership check.
func (u *ContentUsecase) DeleteProduct(ctx context.Context, actorID, productID uuid.UUID) error {
	existing, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if _, err := u.ownedBrand(ctx, actorID, existing.BrandID); err != nil {
		return err
	}
	return u.productRepo.Delete(ctx, productID)
}

// CreateGeneration stores a new piece of generated copy at version 1.
func (u *ContentUsecase) CreateGeneration(ctx context.Context, actorID uuid.UUID, generation *entities.Generation) error {
	if _, err := u.ownedBrand(ctx, actorID, generation.BrandID); err != nil {
		return err
	}
	generation.ID = utils.GenerateUUIDv7()
	generation.Version = 1
	if generation.Status == "" {
		generation.Status = entities.GenerationStatusDraft
	}
	if generation.Language == "" {
		generation.Language = "en"
	}
	return u.generationRepo.Create(ctx, generation)
}

// ListGenerations lists a brand's generations after an ownership check.
func (u *ContentUsecase) ListGenerations(ctx context.Context, actorID, brandID uuid.UUID) ([]*entities.Generation, error) {
	if _, err := u.ownedBrand(ctx, actorID, brandID); err != nil {
		return nil, err
	}
	return u.generationRepo.ListByBrand(ctx, brandID)
}

// UpdateGenerationContent replaces a generation's content, bumping its
// version and snapshotting the prior content. Snapshot and update commit
// in one transaction so versions always mirror content history.
func (u *ContentUsecase) UpdateGenerationContent(ctx context.Context, actorID, generationID uuid.UUID, content json.RawMessage, status entities.GenerationStatus) (*entities.Generation, error) {
	generation, err := u.generationRepo.GetByID(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownedBrand(ctx, actorID, generation.BrandID); err != nil {
		return nil, err
	}

	snapshot := &entities.GenerationVersion{
		ID:           utils.GenerateUUIDv7(),
		GenerationID: generation.ID,
		Content:      generation.Content,
		CreatedAt:    time.Now(),
	}

	generation.Content = content
	generation.Version++
	if status != "" {
		generation.Status = status
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.versionRepo.Create(txCtx, snapshot); err != nil {
			return err
		}
		return u.generationRepo.Update(txCtx, generation)
	})
	if err != nil {
		return nil, err
	}
	return generation, nil
}

// ListGenerationVersions returns a generation's immutable snapshots.
func (u *ContentUsecase) ListGenerationVersions(ctx context.Context, actorID, generationID uuid.UUID) ([]*entities.GenerationVersion, error) {
	generation, err := u.generationRepo.GetByID(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownedBrand(ctx, actorID, generation.BrandID); err != nil {
		return nil, err
	}
	return u.versionRepo.ListByGeneration(ctx, generationID)
}

func (u *ContentUsecase) ownedBrand(ctx context.Context, actorID, brandID uuid.UUID) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Brand not found")
		}
		return nil, err
	}
	if brand.UserID != actorID {
		return nil, domainerrors.NotFound("Brand not found")
	}
	return brand, nil
}
