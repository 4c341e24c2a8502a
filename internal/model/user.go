package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account on the platform.
type User struct {
	ID           string    `json:"id" gorm:"type:char(24);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string    `json:"phone" gorm:"type:char(10)"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;default:'user';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh ID before inserting the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
