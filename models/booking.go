package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusRequested  BookingStatus = "REQUESTED"
	StatusAccepted   BookingStatus = "ACCEPTED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// PaymentPending is the only payment state the system ever sets; payment is
// tracked but never settled here.
const PaymentPending = "PENDING"

type BookingRequest struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ListingID     uint           `json:"listing_id" gorm:"index"`
	Listing       ServiceListing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	RequesterID   uint           `json:"requester_id" gorm:"index"`
	Requester     User           `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	ProviderID    uint           `json:"provider_id" gorm:"index"`
	Provider      User           `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ScheduledAt   time.Time      `json:"scheduled_at"`
	DurationHours float64        `json:"duration_hours"`
	Location      string         `json:"location"`
	Notes         string         `json:"notes"`
	TotalPrice    float64        `json:"total_price"`
	Status        BookingStatus  `json:"status"`
	PaymentStatus string         `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BookingRequest) BeforeCreate(tx *gorm.DB) error {
	// REQUESTED is the only initial state; callers cannot set it.
	b.Status = StatusRequested
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}

// CanTransitionTo reports whether the lifecycle allows moving from the
// booking's current status to next. COMPLETED and CANCELLED are terminal.
func (b *BookingRequest) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusRequested:
		return next == StatusAccepted || next == StatusCancelled
	case StatusAccepted:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// UpdateStatus applies a transition and persists it, or fails without
// touching the row if the transition is not in the table.
func (b *BookingRequest) UpdateStatus(tx *gorm.DB, next BookingStatus) error {
	if !b.CanTransitionTo(next) {
		return fmt.Errorf("invalid status transition from %s to %s", b.Status, next)
	}
	b.Status = next
	return tx.Model(b).Update("status", next).Error
}
