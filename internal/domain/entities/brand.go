package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Brand is a user's brand profile used as the root of the content
// generation domain.
type Brand struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	Name       string          `json:"name"`
	WebsiteURL string          `json:"websiteUrl"`
	Profile    json.RawMessage `json:"profile,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Product is a catalog entry under a brand
type Product struct {
	ID          uuid.UUID   `json:"id"`
	BrandID     uuid.UUID   `json:"brandId"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	Price       null.String `json:"price,omitempty"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	ExternalID  null.String `json:"externalId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// GenerationStatus represents the review state of generated copy
type GenerationStatus string

const (
	GenerationStatusDraft     GenerationStatus = "draft"
	GenerationStatusPublished GenerationStatus = "published"
	GenerationStatusArchived  GenerationStatus = "archived"
)

// Generation is a piece of generated marketing copy for a brand
type Generation struct {
	ID          uuid.UUID        `json:"id"`
	BrandID     uuid.UUID        `json:"brandId"`
	FlowID      string           `json:"flowId"`
	VariationID string           `json:"variationId"`
	TemplateID  string           `json:"templateId"`
	Content     json.RawMessage  `json:"content"`
	Status      GenerationStatus `json:"status"`
	Version     int              `json:"version"`
	Language    string           `json:"language"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// GenerationVersion is an immutable snapshot of a generation's content
// taken before each content change.
type GenerationVersion struct {
	ID           uuid.UUID       `json:"id"`
	GenerationID uuid.UUID       `json:"generationId"`
	Content      json.RawMessage `json:"content"`
	CreatedAt    time.Time       `json:"createdAt"`
}
