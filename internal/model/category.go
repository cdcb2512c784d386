package model

// Category groups a user's tasks by area (work, personal, shopping, etc.).
// Deleting a category removes every task under it.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `json:"description"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`

	Tasks []Task `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
