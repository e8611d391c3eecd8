package models

import (
	"time"
)

// DoneTask logs actual progress for a task on one calendar date. The
// (task_id, date) pair is unique, enforced by the database constraint;
// the application treats a violation as an already-logged conflict.
type DoneTask struct {
	ID       uint64    `gorm:"primarykey" json:"id"`
	TaskID   uint64    `gorm:"not null;uniqueIndex:uq_done_task_date" json:"task_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:uq_done_task_date" json:"date"`
	Quantity int       `gorm:"not null;default:0" json:"quantity"`
	IsDone   bool      `gorm:"not null;default:false" json:"is_done"`
	Updated  time.Time `gorm:"autoUpdateTime" json:"updated"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}
