package models

type Land struct {
	BaseModel
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Size        float64 `gorm:"not null" json:"size"`
	Location    string  `gorm:"not null" json:"location"`
	Price       float64 `gorm:"not null" json:"price"`
	IsForSale   bool    `gorm:"default:true" json:"is_for_sale"`
	ImageURL    string  `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
