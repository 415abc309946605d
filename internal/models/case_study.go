package models

import (
	"time"
)

type CaseStudy struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	ClientName    string     `json:"client_name"`
	Location      string     `json:"location"`
	Description   string     `json:"description"`
	Challenge     string     `json:"challenge"`
	Solution      string     `json:"solution"`
	Results       string     `json:"results"`
	ROIPercentage float64    `json:"roi_percentage"`
	ImageURL      string     `json:"image_url"`
	GalleryImages []string   `json:"gallery_images"`
	Status        string     `json:"status"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreateCaseStudyRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=255"`
	Slug          string   `json:"slug" validate:"required,min=3,max=255"`
	ClientName    string   `json:"client_name"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Challenge     string   `json:"challenge"`
	Solution      string   `json:"solution"`
	Results       string   `json:"results"`
	ROIPercentage float64  `json:"roi_percentage" validate:"omitempty,gte=0"`
	ImageURL      string   `json:"image_url" validate:"omitempty,url"`
	GalleryImages []string `json:"gallery_images"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published"`
	Featured      bool     `json:"featured"`
}

type UpdateCaseStudyRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Slug          *string   `json:"slug,omitempty" validate:"omitempty,min=3,max=255"`
	ClientName    *string   `json:"client_name,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Challenge     *string   `json:"challenge,omitempty"`
	Solution      *string   `json:"solution,omitempty"`
	Results       *string   `json:"results,omitempty"`
	ROIPercentage *float64  `json:"roi_percentage,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string   `json:"image_url,omitempty" validate:"omitempty,url"`
	GalleryImages *[]string `json:"gallery_images,omitempty"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Featured      *bool     `json:"featured,omitempty"`
}
