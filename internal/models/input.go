package models

// Input is a farm-input listing (seed, fertilizer, tools).
type Input struct {
	BaseModel
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    uint    `gorm:"not null" json:"quantity"`
	ImageURL    string  `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
