package models

import "time"

// User is the account entity. VerificationCode is present only while a
// verification cycle is pending; IsEmailVerified and IsActive flip together
// when the code is accepted.
type User struct {
	BaseModel
	Username         string  `gorm:"uniqueIndex;not null" json:"username"`
	Email            string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string  `gorm:"not null" json:"-"`
	IsEmailVerified  bool    `gorm:"default:false" json:"is_email_verified"`
	IsActive         bool    `gorm:"default:false" json:"-"`
	VerificationCode *string `gorm:"type:varchar(6)" json:"-"`

	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}

// Session is the server-side record backing an issued session token.
// Deleting the row invalidates the token regardless of its expiry.
type Session struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
}
