package models

import (
	"time"
)

type Insight struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	Author           string     `json:"author"`
	FeaturedImageURL string     `json:"featured_image_url"`
	Status           string     `json:"status"`
	PublishedAt      *time.Time `json:"published_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreateInsightRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=255"`
	Slug             string `json:"slug" validate:"required,min=3,max=255"`
	Content          string `json:"content"`
	Excerpt          string `json:"excerpt"`
	Author           string `json:"author"`
	FeaturedImageURL string `json:"featured_image_url" validate:"omitempty,url"`
	Status           string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateInsightRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Slug             *string `json:"slug,omitempty" validate:"omitempty,min=3,max=255"`
	Content          *string `json:"content,omitempty"`
	Excerpt          *string `json:"excerpt,omitempty"`
	Author           *string `json:"author,omitempty"`
	FeaturedImageURL *string `json:"featured_image_url,omitempty" validate:"omitempty,url"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}
