package models

import (
	"time"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customer_name"`
	Address      string     `json:"address"`
	PropertyType string     `json:"property_type"`
	ReviewText   string     `json:"review_text"`
	Rating       int        `json:"rating"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at"`
}

type SubmitReviewRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=255"`
	Address      string `json:"address"`
	PropertyType string `json:"property_type"`
	ReviewText   string `json:"review_text" validate:"required,min=10"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
}
