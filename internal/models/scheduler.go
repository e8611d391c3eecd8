package models

import (
	"time"
)

// Scheduler is a weekly due-mask: seven flags, one per weekday. Both the
// title and the flag combination are unique per user, so no two schedulers
// of one user describe the same weekly pattern.
type Scheduler struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:uq_scheduler_title_user;uniqueIndex:uq_scheduler_days" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_scheduler_title_user" json:"title"`
	Monday    bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"monday"`
	Tuesday   bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"tuesday"`
	Wednesday bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"wednesday"`
	Thursday  bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"thursday"`
	Friday    bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"friday"`
	Saturday  bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"saturday"`
	Sunday    bool      `gorm:"not null;default:false;uniqueIndex:uq_scheduler_days" json:"sunday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:SchedulerID" json:"-"`
}

// DueOn reports whether the scheduler marks the given weekday as due.
// The key is always derived from time.Time.Weekday, so every possible
// input maps to a flag.
func (s *Scheduler) DueOn(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	}
	return false
}
