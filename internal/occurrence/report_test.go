package occurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/habit-tracker-api/internal/models"
)

func TestCountCompletedExclusiveBounds(t *testing.T) {
	reading := models.Task{ID: 1, Title: "Reading"}
	w := mustWindow(t, date(2024, 9, 1), date(2024, 9, 30))

	dones := []models.DoneTask{
		{TaskID: 1, Task: reading, Date: date(2024, 9, 5), IsDone: true},
		{TaskID: 1, Task: reading, Date: date(2024, 9, 20), IsDone: false},
		// boundary dates are excluded (strict bounds)
		{TaskID: 1, Task: reading, Date: date(2024, 9, 1), IsDone: true},
		{TaskID: 1, Task: reading, Date: date(2024, 9, 30), IsDone: true},
	}

	counts := CountCompleted(dones, w)
	assert.Equal(t, map[string]int{"Reading": 1}, counts)
}

func TestPercentageRowsHalfDone(t *testing.T) {
	// due every day of a 30-day month, 15 completions marked done
	task := newTask(1, "Stretch", everyDay(), date(2024, 9, 1), date(2024, 9, 30))
	september := MonthWindow(date(2024, 9, 15))

	var dones []models.DoneTask
	for d := 2; d <= 16; d++ {
		dones = append(dones, models.DoneTask{
			TaskID: 1, Task: task, Date: date(2024, 9, d), IsDone: true,
		})
	}

	rows := PercentageRows([]models.Task{task}, dones, september)
	require.Len(t, rows, 1)
	assert.Equal(t, "Stretch", rows[0].Title)
	assert.Equal(t, 30, rows[0].Required)
	assert.Equal(t, 15, rows[0].Done)
	assert.Equal(t, 50.0, rows[0].PercentDone)
}

func TestPercentageRowsRounding(t *testing.T) {
	// 1 of 3 required: 33.333... rounds to 33.33
	task := newTask(1, "Swim", everyDay(), date(2024, 9, 10), date(2024, 9, 12))
	september := MonthWindow(date(2024, 9, 1))
	dones := []models.DoneTask{
		{TaskID: 1, Task: task, Date: date(2024, 9, 10), IsDone: true},
	}

	rows := PercentageRows([]models.Task{task}, dones, september)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Required)
	assert.Equal(t, 33.33, rows[0].PercentDone)

	// 2 of 3: 66.666... rounds to 66.67
	dones = append(dones, models.DoneTask{
		TaskID: 1, Task: task, Date: date(2024, 9, 11), IsDone: true,
	})
	rows = PercentageRows([]models.Task{task}, dones, september)
	assert.Equal(t, 66.67, rows[0].PercentDone)
}

func TestPercentageRowsZeroRequired(t *testing.T) {
	// no due weekday inside the month: required 0 reports 0%, no division
	task := newTask(1, "Idle", &models.Scheduler{ID: 3}, date(2024, 9, 1), date(2024, 9, 30))
	september := MonthWindow(date(2024, 9, 1))

	rows := PercentageRows([]models.Task{task}, nil, september)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Required)
	assert.Equal(t, 0.0, rows[0].PercentDone)
}

func TestQuantityRows(t *testing.T) {
	// quantity target 3, due 10 times, 20 logged in total
	task := newTask(1, "Pushups", everyDay(), date(2024, 9, 1), date(2024, 9, 10))
	task.Quantity = 3
	september := MonthWindow(date(2024, 9, 1))

	dones := []models.DoneTask{
		{TaskID: 1, Date: date(2024, 9, 3), Quantity: 10},
		{TaskID: 1, Date: date(2024, 9, 5), Quantity: 10},
	}

	rows := QuantityRows([]models.Task{task}, dones, september)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pushups", rows[0].Title)
	assert.Equal(t, 30, rows[0].Required)
	assert.Equal(t, 20, rows[0].Done)
	assert.Equal(t, 10, rows[0].Remainder)
}

func TestQuantityRowsOverLogged(t *testing.T) {
	task := newTask(1, "Pages", everyDay(), date(2024, 9, 1), date(2024, 9, 2))
	task.Quantity = 5
	september := MonthWindow(date(2024, 9, 1))

	dones := []models.DoneTask{
		{TaskID: 1, Date: date(2024, 9, 1), Quantity: 25},
	}

	rows := QuantityRows([]models.Task{task}, dones, september)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Required)
	assert.Equal(t, 25, rows[0].Done)
	assert.Equal(t, -15, rows[0].Remainder)
}

func TestQuantityRowsSkipUntargetedTasks(t *testing.T) {
	targeted := newTask(1, "Targeted", everyDay(), date(2024, 9, 1), date(2024, 9, 30))
	targeted.Quantity = 1
	untargeted := newTask(2, "Untargeted", everyDay(), date(2024, 9, 1), date(2024, 9, 30))

	rows := QuantityRows([]models.Task{targeted, untargeted}, nil, MonthWindow(date(2024, 9, 1)))
	require.Len(t, rows, 1)
	assert.Equal(t, "Targeted", rows[0].Title)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(100.0/3))
	assert.Equal(t, 66.67, round2(200.0/3))
	assert.Equal(t, 50.0, round2(50.0))
	assert.Equal(t, 0.56, round2(0.555)) // half rounds away from zero
}

func TestQuantityRowsInclusiveMonthBounds(t *testing.T) {
	// the quantity sum counts the whole month including its first and
	// last day, unlike the strict bounds of the completed count
	task := newTask(1, "Rows", everyDay(), date(2024, 9, 1), date(2024, 9, 30))
	task.Quantity = 1
	september := MonthWindow(date(2024, 9, 1))

	dones := []models.DoneTask{
		{TaskID: 1, Date: date(2024, 9, 1), Quantity: 2},
		{TaskID: 1, Date: date(2024, 9, 30), Quantity: 3},
	}

	rows := QuantityRows([]models.Task{task}, dones, september)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Done)
}

func TestCountCompletedRequiresTaskTitle(t *testing.T) {
	// grouping is by title; two tasks sharing a title aggregate together
	a := models.Task{ID: 1, Title: "Walk"}
	b := models.Task{ID: 2, Title: "Walk"}
	w := mustWindow(t, date(2024, 9, 1), date(2024, 9, 30))

	dones := []models.DoneTask{
		{TaskID: 1, Task: a, Date: date(2024, 9, 5), IsDone: true},
		{TaskID: 2, Task: b, Date: date(2024, 9, 6), IsDone: true},
	}
	assert.Equal(t, map[string]int{"Walk": 2}, CountCompleted(dones, w))
}
