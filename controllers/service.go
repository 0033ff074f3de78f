package controllers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/repository"
)

// UploadFunc pushes a media file to the hosting backend and returns its URL.
type UploadFunc func(ctx context.Context, file interface{}, publicID, folder string) (string, error)

type ServiceController struct {
	services *repository.ServiceRepository
	upload   UploadFunc
}

func NewServiceController(services *repository.ServiceRepository, upload UploadFunc) *ServiceController {
	return &ServiceController{services: services, upload: upload}
}

// ListCategories returns all service categories.
func (sc *ServiceController) ListCategories(c *fiber.Ctx) error {
	categories, err := sc.services.ListCategories()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategory creates a category with a unique name.
func (sc *ServiceController) CreateCategory(c *fiber.Ctx) error {
	category := new(models.ServiceCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if exists, err := sc.services.CategoryNameExists(category.Name); err != nil {
		return serverError(c, err)
	} else if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category already exists",
		})
	}

	if err := sc.services.CreateCategory(category); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListListings returns only active listings.
func (sc *ServiceController) ListListings(c *fiber.Ctx) error {
	listings, err := sc.services.ListActiveListings()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listings)
}

// GetListing returns one listing with its provider, category and media.
func (sc *ServiceController) GetListing(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	listing, err := sc.services.FindListingDetail(uint(id))
	if err != nil {
		return listingNotFound(c)
	}
	return c.JSON(listing)
}

type ListingInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price"`
	PricingUnit  string  `json:"pricing_unit"`
	CategoryID   uint    `json:"category_id"`
	CoverageArea string  `json:"coverage_area"`
}

// CreateListing publishes a listing owned by the calling provider. Any
// caller-supplied provider id is ignored.
func (sc *ServiceController) CreateListing(c *fiber.Ctx) error {
	input := new(ListingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.BasePrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Base price must be greater than zero",
		})
	}

	pricingUnit := input.PricingUnit
	if pricingUnit == "" {
		pricingUnit = "hour"
	}

	listing := &models.ServiceListing{
		ProviderID:   middleware.CurrentUser(c).ID,
		CategoryID:   input.CategoryID,
		Title:        input.Title,
		Description:  input.Description,
		BasePrice:    input.BasePrice,
		PricingUnit:  pricingUnit,
		CoverageArea: input.CoverageArea,
		IsActive:     true,
	}
	if err := sc.services.CreateListing(listing); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

type ListingUpdateInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	BasePrice    *float64 `json:"base_price"`
	PricingUnit  *string  `json:"pricing_unit"`
	CategoryID   *uint    `json:"category_id"`
	CoverageArea *string  `json:"coverage_area"`
	IsActive     *bool    `json:"is_active"`
}

// UpdateListing patches a listing. Ownership mismatch is reported as not
// found so non-owners cannot probe for listing existence.
func (sc *ServiceController) UpdateListing(c *fiber.Ctx) error {
	listing, err := sc.ownedListing(c)
	if err != nil {
		return listingNotFound(c)
	}

	input := new(ListingUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.BasePrice != nil && *input.BasePrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Base price must be greater than zero",
		})
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.BasePrice != nil {
		updates["base_price"] = *input.BasePrice
	}
	if input.PricingUnit != nil {
		updates["pricing_unit"] = *input.PricingUnit
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.CoverageArea != nil {
		updates["coverage_area"] = *input.CoverageArea
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := sc.services.UpdateListing(listing.ID, updates); err != nil {
			return serverError(c, err)
		}
	}

	updated, err := sc.services.FindListingByID(listing.ID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(updated)
}

// DeleteListing hard-deletes a listing owned by the caller.
func (sc *ServiceController) DeleteListing(c *fiber.Ctx) error {
	listing, err := sc.ownedListing(c)
	if err != nil {
		return listingNotFound(c)
	}

	if err := sc.services.DeleteListing(listing.ID); err != nil {
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddListingMedia uploads a media file for an owned listing and records the
// hosted URL.
func (sc *ServiceController) AddListingMedia(c *fiber.Ctx) error {
	listing, err := sc.ownedListing(c)
	if err != nil {
		return listingNotFound(c)
	}

	if sc.upload == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Media uploads are not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing media file",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return serverError(c, err)
	}
	defer file.Close()

	url, err := sc.upload(c.Context(), file, fmt.Sprintf("listing-%d-%s", listing.ID, fileHeader.Filename), "listings")
	if err != nil {
		return serverError(c, err)
	}

	media := &models.ServiceMedia{
		ListingID: listing.ID,
		MediaURL:  url,
		MediaType: "image",
	}
	if err := sc.services.AddMedia(media); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// ownedListing loads the listing from the id param and checks the caller
// owns it. Both a missing listing and an ownership mismatch return an
// error so callers can answer 404 for either.
func (sc *ServiceController) ownedListing(c *fiber.Ctx) (*models.ServiceListing, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, err
	}
	listing, err := sc.services.FindListingByID(uint(id))
	if err != nil {
		return nil, err
	}
	if listing.ProviderID != middleware.CurrentUser(c).ID {
		return nil, fmt.Errorf("listing %d not owned by caller", listing.ID)
	}
	return listing, nil
}

func listingNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Listing not found",
	})
}
