package dto

import "time"

type DocumentRequestDTO struct {
	Name   string `json:"name" validate:"required,max=120" example:"Passport"`
	Active bool   `json:"active" example:"true"`
}

type DocumentResponseDTO struct {
	ID     string `json:"id" example:"5f6a1c1e-7b9d-4a43-9f6d-2c1f4f1b8e70"`
	Name   string `json:"name" example:"Passport"`
	Active bool   `json:"active" example:"true"`
}

type BannerRequestDTO struct {
	Name     string `json:"name" validate:"required,max=120" example:"Spring promo"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

type BannerResponseDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" example:"Spring promo"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadImageResponseDTO struct {
	URL string `json:"url"`
}

type CategoryResponseDTO struct {
	ID   string `json:"id"`
	Name string `json:"name" example:"Cleaning"`
}

type SubcategoryRequestDTO struct {
	Name       string `json:"name" validate:"required,max=120" example:"Deep cleaning"`
	CategoryID string `json:"category_id" validate:"required"`
}

type SubcategoryResponseDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name" example:"Deep cleaning"`
	CategoryID string `json:"category_id"`
}
