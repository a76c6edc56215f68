package models

// Service is an offered farm service (tilling, transport, agronomy visits).
// Price is nullable: some services are negotiated on contact.
type Service struct {
	BaseModel
	UserID      string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Location    string   `gorm:"not null" json:"location"`
	ImageURL    string   `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
