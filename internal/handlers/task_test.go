package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/habit-tracker-api/internal/constants"
	"github.com/yukikurage/habit-tracker-api/internal/database"
	"github.com/yukikurage/habit-tracker-api/internal/dto"
	"github.com/yukikurage/habit-tracker-api/internal/models"
	"github.com/yukikurage/habit-tracker-api/internal/repository"
	"github.com/yukikurage/habit-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Scheduler{},
		&models.Task{},
		&models.DoneTask{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	categoryRepo := repository.NewCategoryRepository(suite.db)
	schedulerRepo := repository.NewSchedulerRepository(suite.db)
	taskService := services.NewTaskService(taskRepo, categoryRepo, schedulerRepo)
	suite.handler = NewTaskHandler(taskService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestCategory(title string, userID uint64) *models.Category {
	category := &models.Category{
		Title:  title,
		UserID: userID,
	}
	suite.db.Create(category)
	return category
}

func (suite *TaskHandlerTestSuite) createTestScheduler(title string, userID uint64) *models.Scheduler {
	scheduler := &models.Scheduler{
		Title:  title,
		UserID: userID,
		Monday: true,
		Friday: true,
	}
	suite.db.Create(scheduler)
	return scheduler
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, userID uint64) *models.Task {
	task := &models.Task{
		Title:     title,
		UserID:    userID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	suite.db.Create(task)
	return task
}

// Helper function to create authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

// TestListTasks_Success tests successful task listing
func (suite *TaskHandlerTestSuite) TestListTasks_Success() {
	user := suite.createTestUser("lister")
	task := suite.createTestTask("Morning Run", user.ID)

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, user.ID)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Tasks, 1)
	assert.Equal(suite.T(), task.Title, response.Tasks[0].Title)
	assert.Equal(suite.T(), int64(1), response.TotalCount)
}

// TestListTasks_ExcludesOtherUsers tests that listing is scoped per user
func (suite *TaskHandlerTestSuite) TestListTasks_ExcludesOtherUsers() {
	owner := suite.createTestUser("owner")
	other := suite.createTestUser("other")
	suite.createTestTask("Owner Task", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, other.ID)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Tasks)
	assert.Equal(suite.T(), int64(0), response.TotalCount)
}

// TestListTasks_Unauthorized tests listing without authentication
func (suite *TaskHandlerTestSuite) TestListTasks_Unauthorized() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestGetTask_Success tests successful task retrieval
func (suite *TaskHandlerTestSuite) TestGetTask_Success() {
	user := suite.createTestUser("getter")
	scheduler := suite.createTestScheduler("Mon/Fri", user.ID)
	task := suite.createTestTask("Read", user.ID)
	task.SchedulerID = &scheduler.ID
	suite.db.Save(task)

	c, w := suite.createAuthContext("GET", "/api/tasks/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), task.ID, response.ID)
	assert.Equal(suite.T(), task.Title, response.Title)
	assert.Equal(suite.T(), "2024-01-01", response.StartDate)
	suite.Require().NotNil(response.Scheduler)
	assert.True(suite.T(), response.Scheduler.Monday)
	assert.False(suite.T(), response.Scheduler.Sunday)
}

// TestGetTask_NotFound tests retrieval of a missing task
func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	user := suite.createTestUser("getter")

	c, w := suite.createAuthContext("GET", "/api/tasks/999", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetTask_OtherUser tests that another user's task reads as not found
func (suite *TaskHandlerTestSuite) TestGetTask_OtherUser() {
	owner := suite.createTestUser("owner")
	other := suite.createTestUser("other")
	suite.createTestTask("Private", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/tasks/1", nil, other.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateTask_Success tests successful task creation
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("creator")
	category := suite.createTestCategory("Health", user.ID)
	scheduler := suite.createTestScheduler("Mon/Fri", user.ID)

	requestBody := map[string]interface{}{
		"title":         "Swim",
		"category_id":   category.ID,
		"scheduler_id":  scheduler.ID,
		"start_date":    "2024-01-01",
		"end_date":      "2024-03-31",
		"quantity":      20,
		"quantity_unit": "laps",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Swim", response.Title)
	assert.Equal(suite.T(), "2024-01-01", response.StartDate)
	assert.Equal(suite.T(), "2024-03-31", response.EndDate)
	assert.Equal(suite.T(), 20, response.Quantity)
	suite.Require().NotNil(response.Category)
	assert.Equal(suite.T(), category.Title, response.Category.Title)
}

// TestCreateTask_MissingTitle tests creation without a title
func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"start_date": "2024-01-01",
		"end_date":   "2024-03-31",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_ReversedDates tests creation with end before start
func (suite *TaskHandlerTestSuite) TestCreateTask_ReversedDates() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title":      "Backwards",
		"start_date": "2024-03-31",
		"end_date":   "2024-01-01",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_MalformedDate tests creation with a bad date string
func (suite *TaskHandlerTestSuite) TestCreateTask_MalformedDate() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title":      "Bad Date",
		"start_date": "01/01/2024",
		"end_date":   "2024-03-31",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_ForeignCategory tests creation referencing another user's category
func (suite *TaskHandlerTestSuite) TestCreateTask_ForeignCategory() {
	user := suite.createTestUser("creator")
	other := suite.createTestUser("other")
	category := suite.createTestCategory("Not Yours", other.ID)

	requestBody := map[string]interface{}{
		"title":       "Sneaky",
		"category_id": category.ID,
		"start_date":  "2024-01-01",
		"end_date":    "2024-03-31",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateTask_NegativeQuantity tests creation with a negative target
func (suite *TaskHandlerTestSuite) TestCreateTask_NegativeQuantity() {
	user := suite.createTestUser("creator")

	requestBody := map[string]interface{}{
		"title":      "Negative",
		"start_date": "2024-01-01",
		"end_date":   "2024-03-31",
		"quantity":   -5,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/tasks", body, user.ID)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateTask_Success tests successful task update
func (suite *TaskHandlerTestSuite) TestUpdateTask_Success() {
	user := suite.createTestUser("updater")
	suite.createTestTask("Old Title", user.ID)

	requestBody := map[string]interface{}{
		"title":      "Updated Title",
		"start_date": "2024-02-01",
		"end_date":   "2024-02-29",
		"quantity":   10,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", "/api/tasks/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Updated Title", response.Title)
	assert.Equal(suite.T(), "2024-02-01", response.StartDate)
	assert.Equal(suite.T(), 10, response.Quantity)
}

// TestUpdateTask_InvalidRequest tests task update with invalid request
func (suite *TaskHandlerTestSuite) TestUpdateTask_InvalidRequest() {
	user := suite.createTestUser("updater")
	suite.createTestTask("Test Task", user.ID)

	c, w := suite.createAuthContext("PUT", "/api/tasks/1", []byte("invalid json"), user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteTask_Success tests that deletion also removes completion records
func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	user := suite.createTestUser("deleter")
	task := suite.createTestTask("Task to Delete", user.ID)
	done := &models.DoneTask{
		TaskID: task.ID,
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsDone: true,
	}
	suite.db.Create(done)

	c, w := suite.createAuthContext("DELETE", "/api/tasks/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Task deleted successfully", response["message"])

	var taskCount, doneCount int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&taskCount)
	suite.db.Model(&models.DoneTask{}).Where("task_id = ?", task.ID).Count(&doneCount)
	assert.Equal(suite.T(), int64(0), taskCount)
	assert.Equal(suite.T(), int64(0), doneCount)
}

// TestDeleteTask_NotFound tests deletion of a missing task
func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	user := suite.createTestUser("deleter")

	c, w := suite.createAuthContext("DELETE", "/api/tasks/999", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
