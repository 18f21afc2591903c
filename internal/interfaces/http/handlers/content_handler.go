package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"mailcraft.backend/internal/domain/entities"
	domainerrors "mailcraft.backend/internal/domain/errors"
	"mailcraft.backend/internal/interfaces/http/middleware"
	"mailcraft.backend/internal/interfaces/http/response"
	"mailcraft.backend/internal/usecases"
)

// ContentHandler handles brand, product and generation endpoints
type ContentHandler struct {
	contentUsecase *usecases.ContentUsecase
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentUsecase *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

// CreateBrand creates a brand for the actor
// POST /api/v1/brands
func (h *ContentHandler) CreateBrand(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Name       string          `json:"name" binding:"required,max=200"`
		WebsiteURL string          `json:"websiteUrl" binding:"required,url"`
		Profile    json.RawMessage `json:"profile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand := &entities.Brand{
		Name:       strings.TrimSpace(input.Name),
		WebsiteURL: strings.TrimSpace(input.WebsiteURL),
		Profile:    input.Profile,
	}
	if err := h.contentUsecase.CreateBrand(c.Request.Context(), userID, brand); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"brand": brand})
}

// ListBrands lists the actor's brands
// GET /api/v1/brands
func (h *ContentHandler) ListBrands(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brands, err := h.contentUsecase.ListBrands(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"brands": brands})
}

// UpdateBrand updates one of the actor's brands
// PUT /api/v1/brands/:id
func (h *ContentHandler) UpdateBrand(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	var input struct {
		Name       string          `json:"name" binding:"required,max=200"`
		WebsiteURL string          `json:"websiteUrl" binding:"required,url"`
		Profile    json.RawMessage `json:"profile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand := &entities.Brand{
		ID:         brandID,
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		WebsiteURL: strings.TrimSpace(input.WebsiteURL),
		Profile:    input.Profile,
	}
	if err := h.contentUsecase.UpdateBrand(c.Request.Context(), userID, brand); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"brand": brand})
}

// DeleteBrand deletes one of the actor's brands
// DELETE /api/v1/brands/:id
func (h *ContentHandler) DeleteBrand(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	if err := h.contentUsecase.DeleteBrand(c.Request.Context(), userID, brandID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": "Brand deleted"})
}

// CreateProduct adds a product to a brand
// POST /api/v1/brands/:id/products
func (h *ContentHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required,max=200"`
		Description string `json:"description"`
		Price       string `json:"price"`
		ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
		ExternalID  string `json:"externalId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product := &entities.Product{
		BrandID:     brandID,
		Name:        strings.TrimSpace(input.Name),
		Description: null.NewString(input.Description, input.Description != ""),
		Price:       null.NewString(input.Price, input.Price != ""),
		ImageURL:    null.NewString(input.ImageURL, input.ImageURL != ""),
		ExternalID:  null.NewString(input.ExternalID, input.ExternalID != ""),
	}
	if err := h.contentUsecase.CreateProduct(c.Request.Context(), userID, product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// ListProducts lists a brand's products
// GET /api/v1/brands/:id/products
func (h *ContentHandler) ListProducts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	products, err := h.contentUsecase.ListProducts(c.Request.Context(), userID, brandID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// UpdateProduct updates a product
// PUT /api/v1/products/:id
func (h *ContentHandler) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required,max=200"`
		Description string `json:"description"`
		Price       string `json:"price"`
		ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
		ExternalID  string `json:"externalId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product := &entities.Product{
		ID:          productID,
		Name:        strings.TrimSpace(input.Name),
		Description: null.NewString(input.Description, input.Description != ""),
		Price:       null.NewString(input.Price, input.Price != ""),
		ImageURL:    null.NewString(input.ImageURL, input.ImageURL != ""),
		ExternalID:  null.NewString(input.ExternalID, input.ExternalID != ""),
	}
	if err := h.contentUsecase.UpdateProduct(c.Request.Context(), userID, product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// DeleteProduct deletes a product
// DELETE /api/v1/products/:id
func (h *ContentHandler) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	if err := h.contentUsecase.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": "Product deleted"})
}

// CreateGeneration stores a new generation for a brand
// POST /api/v1/brands/:id/generations
func (h *ContentHandler) CreateGeneration(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	var input struct {
		FlowID      string          `json:"flowId" binding:"required"`
		VariationID string          `json:"variationId" binding:"required"`
		TemplateID  string          `json:"templateId" binding:"required"`
		Content     json.RawMessage `json:"content" binding:"required"`
		Language    string          `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	generation := &entities.Generation{
		BrandID:     brandID,
		FlowID:      input.FlowID,
		VariationID: input.VariationID,
		TemplateID:  input.TemplateID,
		Content:     input.Content,
		Language:    input.Language,
	}
	if err := h.contentUsecase.CreateGeneration(c.Request.Context(), userID, generation); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"generation": generation})
}

// ListGenerations lists a brand's generations
// GET /api/v1/brands/:id/generations
func (h *ContentHandler) ListGenerations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	generations, err := h.contentUsecase.ListGenerations(c.Request.Context(), userID, brandID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"generations": generations})
}

// UpdateGenerationContent replaces a generation's content
// PUT /api/v1/generations/:id/content
func (h *ContentHandler) UpdateGenerationContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	generationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid generation ID"))
		return
	}

	var input struct {
		Content json.RawMessage `json:"content" binding:"required"`
		Status  string          `json:"status" binding:"omitempty,oneof=draft published archived"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	generation, err := h.contentUsecase.UpdateGenerationContent(
		c.Request.Context(), userID, generationID,
		input.Content, entities.GenerationStatus(input.Status),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"generation": generation})
}

// ListGenerationVersions returns a generation's content history
// GET /api/v1/generations/:id/versions
func (h *ContentHandler) ListGenerationVersions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	generationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid generation ID"))
		return
	}

	versions, err := h.contentUsecase.ListGenerationVersions(c.Request.Context(), userID, generationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"versions": versions})
}
