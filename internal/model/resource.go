package model

import (
	"time"

	"gorm.io/gorm"
)

// ResourceType classifies a shareable resource.
type ResourceType string

const (
	TypeBook   ResourceType = "book"
	TypeCourse ResourceType = "course"
	TypeOther  ResourceType = "other"
)

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case TypeBook, TypeCourse, TypeOther:
		return true
	}
	return false
}

// ResourceStatus is the approval state of a resource. The only
// transition is pending -> approved; there is no way back.
type ResourceStatus string

const (
	StatusPending  ResourceStatus = "pending"
	StatusApproved ResourceStatus = "approved"
)

// Resource is a shareable item submitted by a user, subject to
// admin approval before it is considered published.
type Resource struct {
	ID          string         `json:"id" gorm:"type:char(24);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Type        ResourceType   `json:"type" gorm:"size:50;not null;index"`
	SubmitterID string         `json:"submitter_id" gorm:"type:char(24);index"`
	Status      ResourceStatus `json:"status" gorm:"size:50;default:'pending';index"`
	URL         string         `json:"url" gorm:"size:2048"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate assigns a fresh ID before inserting the record.
func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}
