package model

import "time"

// User is the root of the ownership hierarchy. Usernames are unique
// across the whole store.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`

	Categories []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tasks      []Task     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
