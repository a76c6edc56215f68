package dto

// Create requests carry all required listing fields. Update requests use
// pointer fields so absent keys leave the stored value untouched.

type CreateProductRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid4"`
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    uint    `json:"quantity" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
}

type UpdateProductRequest struct {
	CategoryID  *string  `json:"category_id" binding:"omitempty,uuid4"`
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity    *uint    `json:"quantity"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
}

type CreateLandRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Size        float64 `json:"size" binding:"required,gt=0"`
	Location    string  `json:"location" binding:"required,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsForSale   *bool   `json:"is_for_sale"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
}

type UpdateLandRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Size        *float64 `json:"size" binding:"omitempty,gt=0"`
	Location    *string  `json:"location" binding:"omitempty,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	IsForSale   *bool    `json:"is_for_sale"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
}

type CreateInputRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    uint    `json:"quantity" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
}

type UpdateInputRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity    *uint    `json:"quantity"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
}

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Location    string   `json:"location" binding:"omitempty,max=255"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
}

type UpdateServiceRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Location    *string  `json:"location" binding:"omitempty,max=255"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
}

type CreateVideoRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	YouTubeVideoID string `json:"youtube_video_id" binding:"required,max=20"`
	Description    string `json:"description"`
}

type UpdateVideoRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=255"`
	YouTubeVideoID *string `json:"youtube_video_id" binding:"omitempty,max=20"`
	Description    *string `json:"description"`
}
