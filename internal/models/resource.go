package models

import (
	"time"
)

type Resource struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	FileURL      string    `json:"file_url"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateResourceRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	FileURL      string `json:"file_url" validate:"required,url"`
	Category     string `json:"category"`
	Status       string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateResourceRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description  *string `json:"description,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	FileURL      *string `json:"file_url,omitempty" validate:"omitempty,url"`
	Category     *string `json:"category,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}
