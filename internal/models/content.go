package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Slug        string                      `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt     string                      `json:"excerpt"`
	Content     string                      `gorm:"type:text" json:"content"`
	Author      string                      `json:"author"`
	Category    string                      `gorm:"index" json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	ImageURL    string                      `json:"imageUrl"`
	Published   bool                        `gorm:"not null;default:false;index" json:"published"`
	PublishedAt *time.Time                  `json:"publishedAt,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// BusinessSubmission is a vendor's request to be listed in the directory.
type BusinessSubmission struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	BusinessName string           `gorm:"not null" json:"businessName"`
	Category     string           `gorm:"not null" json:"category"`
	ContactName  string           `gorm:"not null" json:"contactName"`
	Email        string           `gorm:"not null" json:"email"`
	Phone        string           `json:"phone"`
	Location     string           `json:"location"`
	Description  string           `gorm:"type:text" json:"description"`
	Website      string           `json:"website"`
	Status       SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	VendorID     *uint            `json:"vendorId,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
