package models

import "time"

type ServiceCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ServiceListing struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ProviderID    uint            `json:"provider_id" gorm:"index"`
	Provider      User            `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CategoryID    uint            `json:"category_id" gorm:"index"`
	Category      ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	BasePrice     float64         `json:"base_price"`
	PricingUnit   string          `json:"pricing_unit" gorm:"default:'hour'"`
	CoverageArea  string          `json:"coverage_area"`
	CoverImageURL string          `json:"cover_image_url"`
	IsActive      bool            `json:"is_active" gorm:"default:true"`

	MediaItems []ServiceMedia `json:"media_items,omitempty" gorm:"foreignKey:ListingID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceMedia struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ListingID uint   `json:"listing_id" gorm:"index"`
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type" gorm:"default:'image'"`
}
