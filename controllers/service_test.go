package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	fapp, _ := newTestEnv(t)

	createCategory(t, fapp, "Cleaning")

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/categories", fiber.Map{
		"name": "Cleaning",
	}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate category: expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateListingRequiresProviderRole(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000022", "SERVICE_SEEKER")
	seekerToken, _ := login(t, fapp, "08000000022")

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/listings", fiber.Map{
		"title":       "Apartment Cleaning",
		"description": "desc",
		"base_price":  50,
		"category_id": categoryID,
	}, seekerToken)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("seeker creating listing: expected 403, got %d", resp.StatusCode)
	}
}

func TestCreateListingRejectsNonPositivePrice(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	providerToken, _ := login(t, fapp, "08000000011")

	for _, price := range []float64{0, -5} {
		resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/listings", fiber.Map{
			"title":       "Apartment Cleaning",
			"description": "desc",
			"base_price":  price,
			"category_id": categoryID,
		}, providerToken)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("price %v: expected 400, got %d", price, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestCreateListingBindsProviderToCaller(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	providerID := registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	providerToken, _ := login(t, fapp, "08000000011")

	// A caller-supplied provider_id is ignored.
	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/listings", fiber.Map{
		"title":       "Apartment Cleaning",
		"description": "desc",
		"base_price":  50,
		"category_id": categoryID,
		"provider_id": 9999,
	}, providerToken)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create listing: expected 201, got %d", resp.StatusCode)
	}
	var listing struct {
		ProviderID uint `json:"provider_id"`
	}
	decodeJSON(t, resp, &listing)
	if listing.ProviderID != providerID {
		t.Fatalf("expected provider_id %d, got %d", providerID, listing.ProviderID)
	}
}

func TestListingOwnershipMaskedAsNotFound(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	ownerToken, _ := login(t, fapp, "08000000011")
	listingID := createListing(t, fapp, ownerToken, categoryID, "Apartment Cleaning")

	registerUser(t, fapp, "08000000033", "SERVICE_PROVIDER")
	otherToken, _ := login(t, fapp, "08000000033")

	path := fmt.Sprintf("/api/v1/services/listings/%d", listingID)

	resp := doJSON(t, fapp, http.MethodPatch, path, fiber.Map{"title": "Hijacked"}, otherToken)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-owner patch: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, fapp, http.MethodDelete, path, nil, otherToken)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-owner delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The listing still exists and the owner can see it.
	resp = doJSON(t, fapp, http.MethodGet, path, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("listing detail after masked attempts: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListingUpdateAndDeactivation(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	ownerToken, _ := login(t, fapp, "08000000011")
	listingID := createListing(t, fapp, ownerToken, categoryID, "Apartment Cleaning")

	path := fmt.Sprintf("/api/v1/services/listings/%d", listingID)
	resp := doJSON(t, fapp, http.MethodPatch, path, fiber.Map{
		"title":     "Deep Cleaning",
		"is_active": false,
	}, ownerToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner patch: expected 200, got %d", resp.StatusCode)
	}
	var updated struct {
		Title    string `json:"title"`
		IsActive bool   `json:"is_active"`
	}
	decodeJSON(t, resp, &updated)
	if updated.Title != "Deep Cleaning" || updated.IsActive {
		t.Fatalf("unexpected updated listing: %+v", updated)
	}

	// Deactivated listings drop out of the public list.
	resp = doJSON(t, fapp, http.MethodGet, "/api/v1/services/listings", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list listings: expected 200, got %d", resp.StatusCode)
	}
	var listings []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &listings)
	if len(listings) != 0 {
		t.Fatalf("expected no active listings, got %d", len(listings))
	}
}

func TestListingDeleteByOwner(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	ownerToken, _ := login(t, fapp, "08000000011")
	listingID := createListing(t, fapp, ownerToken, categoryID, "Apartment Cleaning")

	path := fmt.Sprintf("/api/v1/services/listings/%d", listingID)
	resp := doJSON(t, fapp, http.MethodDelete, path, nil, ownerToken)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("owner delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, fapp, http.MethodGet, path, nil, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted listing detail: expected 404, got %d", resp.StatusCode)
	}
}

func TestAddListingMedia(t *testing.T) {
	fapp, _ := newTestEnv(t)

	categoryID := createCategory(t, fapp, "Cleaning")
	registerUser(t, fapp, "08000000011", "SERVICE_PROVIDER")
	ownerToken, _ := login(t, fapp, "08000000011")
	listingID := createListing(t, fapp, ownerToken, categoryID, "Apartment Cleaning")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "cover.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/services/listings/%d/media", listingID), &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ownerToken)

	resp, err := fapp.Test(req, -1)
	if err != nil {
		t.Fatalf("upload media: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload media: expected 201, got %d", resp.StatusCode)
	}
	var media struct {
		ListingID uint   `json:"listing_id"`
		MediaURL  string `json:"media_url"`
	}
	decodeJSON(t, resp, &media)
	if media.ListingID != listingID || media.MediaURL == "" {
		t.Fatalf("unexpected media record: %+v", media)
	}

	// The media shows up on the listing detail.
	resp = doJSON(t, fapp, http.MethodGet, fmt.Sprintf("/api/v1/services/listings/%d", listingID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("listing detail: expected 200, got %d", resp.StatusCode)
	}
	var detail struct {
		MediaItems []struct {
			MediaURL string `json:"media_url"`
		} `json:"media_items"`
	}
	decodeJSON(t, resp, &detail)
	if len(detail.MediaItems) != 1 {
		t.Fatalf("expected 1 media item, got %d", len(detail.MediaItems))
	}
}
