package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/service-marketplace/app"
	"github.com/meinhoongagan/service-marketplace/config"
	"github.com/meinhoongagan/service-marketplace/db"
)

const testPassword = "Passw0rd!"

func testConfig() *config.Config {
	return &config.Config{
		Port:        "0",
		DatabaseURL: "unused",
		SecretKey:   "test-secret-key",
		Algorithm:   "HS256",
		AccessTTL:   time.Hour,
		RefreshTTL:  7 * 24 * time.Hour,
	}
}

// newTestEnv builds the full app against a throwaway SQLite database with a
// stubbed media uploader.
func newTestEnv(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	upload := func(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
		return "https://cdn.example.test/" + folder + "/" + publicID, nil
	}

	return app.New(testConfig(), conn, upload), conn
}

func doJSON(t *testing.T, fapp *fiber.App, method, path string, payload interface{}, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fapp.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, fapp *fiber.App, phone, role string) uint {
	t.Helper()

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"phone":      phone,
		"email":      phone + "@example.com",
		"password":   testPassword,
		"first_name": "Test",
		"last_name":  "User",
		"role":       role,
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", phone, resp.StatusCode)
	}

	var user struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &user)
	if user.ID == 0 {
		t.Fatalf("register %s: missing user id", phone)
	}
	return user.ID
}

// login exchanges phone/password for a token pair via the form login.
func login(t *testing.T, fapp *fiber.App, phone string) (access, refresh string) {
	t.Helper()

	form := url.Values{}
	form.Set("username", phone)
	form.Set("password", testPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := fapp.Test(req, -1)
	if err != nil {
		t.Fatalf("login %s: %v", phone, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", phone, resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeJSON(t, resp, &body)
	if body.AccessToken == "" || body.RefreshToken == "" {
		t.Fatalf("login %s: missing tokens", phone)
	}
	return body.AccessToken, body.RefreshToken
}

// createCategory seeds a category and returns its id.
func createCategory(t *testing.T, fapp *fiber.App, name string) uint {
	t.Helper()

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/categories", fiber.Map{
		"name":        name,
		"description": name + " services",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category %s: expected 201, got %d", name, resp.StatusCode)
	}

	var category struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &category)
	return category.ID
}

// createListing publishes a listing for the given provider token.
func createListing(t *testing.T, fapp *fiber.App, token string, categoryID uint, title string) uint {
	t.Helper()

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/services/listings", fiber.Map{
		"title":         title,
		"description":   "desc for " + title,
		"base_price":    50,
		"pricing_unit":  "hour",
		"category_id":   categoryID,
		"coverage_area": "Downtown",
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create listing %s: expected 201, got %d", title, resp.StatusCode)
	}

	var listing struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &listing)
	return listing.ID
}

// createBooking opens a booking for the given requester token.
func createBooking(t *testing.T, fapp *fiber.App, token string, listingID, providerID uint) uint {
	t.Helper()

	resp := doJSON(t, fapp, http.MethodPost, "/api/v1/bookings/", fiber.Map{
		"listing_id":     listingID,
		"provider_id":    providerID,
		"scheduled_at":   time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
		"duration_hours": 2,
		"location":       "123 Main St",
		"total_price":    100,
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create booking: expected 201, got %d", resp.StatusCode)
	}

	var booking struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &booking)
	return booking.ID
}

func bookingStatusPath(id uint) string {
	return fmt.Sprintf("/api/v1/bookings/%d/status", id)
}
