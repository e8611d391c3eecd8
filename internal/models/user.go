package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tasks      []Task      `gorm:"foreignKey:UserID" json:"-"`
	Categories []Category  `gorm:"foreignKey:UserID" json:"-"`
	Schedulers []Scheduler `gorm:"foreignKey:UserID" json:"-"`
}
