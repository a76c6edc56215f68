package models

type Video struct {
	BaseModel
	UserID         string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string `gorm:"not null" json:"title"`
	YouTubeVideoID string `gorm:"column:youtube_video_id;not null" json:"youtube_video_id"`
	Description    string `gorm:"type:text" json:"description"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
