package models

import (
	"time"
)

// Task is a recurring activity a user tracks between StartDate and EndDate
// (inclusive calendar dates). Which days inside that range are actually due
// is decided by the attached Scheduler's weekly mask; Quantity is the
// per-occurrence target (0 = untracked).
type Task struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Title        string     `gorm:"type:varchar(65);not null" json:"title"`
	UserID       uint64     `gorm:"not null;index" json:"user_id"`
	CategoryID   *uint64    `gorm:"index" json:"category_id"`
	SchedulerID  *uint64    `gorm:"index" json:"scheduler_id"`
	StartDate    time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate      time.Time  `gorm:"type:date;not null;index" json:"end_date"`
	Quantity     int        `gorm:"not null;default:0" json:"quantity"`
	QuantityUnit string     `gorm:"type:varchar(31)" json:"quantity_unit"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category  *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Scheduler *Scheduler `gorm:"foreignKey:SchedulerID;constraint:OnDelete:SET NULL" json:"scheduler,omitempty"`
	DoneTasks []DoneTask `gorm:"foreignKey:TaskID" json:"-"`
}
