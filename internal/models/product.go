package models

type Product struct {
	BaseModel
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string  `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    uint    `gorm:"not null" json:"quantity"`
	ImageURL    string  `json:"image_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
