package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/repository"
	"github.com/meinhoongagan/service-marketplace/utils"
)

type BookingController struct {
	bookings *repository.BookingRepository
	services *repository.ServiceRepository
}

func NewBookingController(bookings *repository.BookingRepository, services *repository.ServiceRepository) *BookingController {
	return &BookingController{bookings: bookings, services: services}
}

type BookingInput struct {
	ListingID     uint      `json:"listing_id"`
	ProviderID    uint      `json:"provider_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationHours float64   `json:"duration_hours"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	TotalPrice    float64   `json:"total_price"`
}

// Create opens a booking request against a listing. The caller becomes the
// requester; the supplied provider id must match the listing's actual
// provider so a booking cannot be spoofed onto the wrong provider.
func (bc *BookingController) Create(c *fiber.Ctx) error {
	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	listing, err := bc.services.FindListingByID(input.ListingID)
	if err != nil || listing.ProviderID != input.ProviderID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing/provider",
		})
	}

	booking := &models.BookingRequest{
		ListingID:     input.ListingID,
		RequesterID:   middleware.CurrentUser(c).ID,
		ProviderID:    input.ProviderID,
		ScheduledAt:   input.ScheduledAt,
		DurationHours: input.DurationHours,
		Location:      input.Location,
		Notes:         input.Notes,
		TotalPrice:    input.TotalPrice,
	}
	if err := bc.bookings.Create(booking); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// List returns the caller's bookings from one side of the engagement,
// optionally filtered by status.
func (bc *BookingController) List(c *fiber.Ctx) error {
	role := c.Query("role", "requester")
	status := models.BookingStatus(c.Query("status_filter"))

	bookings, err := bc.bookings.ListForUser(middleware.CurrentUser(c).ID, role, status)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(bookings)
}

// UpdateStatus drives one transition of the booking lifecycle. Only the
// booking's requester or provider may attempt it, and the target status
// must be reachable from the current one.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	booking, err := bc.bookings.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	caller := middleware.CurrentUser(c)
	if booking.RequesterID != caller.ID && booking.ProviderID != caller.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not allowed",
		})
	}

	type StatusInput struct {
		NewStatus models.BookingStatus `json:"new_status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := bc.bookings.UpdateStatus(booking, input.NewStatus); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status transition",
		})
	}
	return c.JSON(booking)
}
