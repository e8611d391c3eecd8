package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes beyond what AutoMigrate
// declares. Occurrence resolution filters tasks by owner and date-range
// overlap; completion lookups hit (task_id, date).
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"tasks", "idx_tasks_user_dates", "user_id, start_date, end_date"},
		{"tasks", "idx_tasks_category_id", "category_id"},
		{"tasks", "idx_tasks_scheduler_id", "scheduler_id"},
		{"done_tasks", "idx_done_tasks_task_date", "task_id, date"},
		{"done_tasks", "idx_done_tasks_date", "date"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
