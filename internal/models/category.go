package models

import "time"

// Category groups tasks under a user-defined label. Titles are unique per
// user; deleting a category leaves its tasks in place with a nulled
// reference.
type Category struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uq_category_title_user" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_category_title_user" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:CategoryID" json:"-"`
}
