package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleProvider UserRole = "SERVICE_PROVIDER"
	RoleSeeker   UserRole = "SERVICE_SEEKER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Phone        string   `json:"phone" gorm:"uniqueIndex;size:11;not null"`
	Email        *string  `json:"email" gorm:"uniqueIndex"`
	PasswordHash string   `json:"-" gorm:"not null"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	AvatarURL    string   `json:"avatar_url"`
	Bio          string   `json:"bio"`
	Role         UserRole `json:"role" gorm:"default:'SERVICE_SEEKER'"`
	RatingAvg    float64  `json:"rating_avg" gorm:"default:0"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`

	Address        *Address       `json:"address,omitempty" gorm:"foreignKey:UserID"`
	Availabilities []Availability `json:"availabilities,omitempty" gorm:"foreignKey:UserID"`
	Skills         []UserSkill    `json:"skills,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleSeeker
	}
	return nil
}

type UserSkill struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   uint   `json:"user_id" gorm:"index"`
	SkillTag string `json:"skill_tag" gorm:"index"`
}
