package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/handler"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/middleware"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupHandlerDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

// authenticatedAs injects the user the JWT middleware would have resolved.
func authenticatedAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func TestCreateProject_SetsCreatorFromAuthenticatedUser(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupHandlerDB(t)
	projectHandler := handler.NewProjectHandler(repository.NewProjectRepository(gormDB))

	creatorID := uuid.New()
	r := gin.Default()
	r.POST("/projects", authenticatedAs(creatorID), projectHandler.Create)

	projectID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "projects"`).
		WithArgs("Site A", model.ProjectStatusPlanning, creatorID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(projectID.String()))
	mock.ExpectCommit()

	reqBody := handler.CreateProjectRequest{Name: "Site A"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.ProjectResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, creatorID.String(), response.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject_Unauthenticated(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	gormDB, _ := setupHandlerDB(t)
	projectHandler := handler.NewProjectHandler(repository.NewProjectRepository(gormDB))

	r := gin.Default()
	r.POST("/projects", projectHandler.Create)

	reqBody := handler.CreateProjectRequest{Name: "Site A"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLastPlannerGrid_ProjectNotFound(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupHandlerDB(t)
	plannerHandler := handler.NewLastPlannerHandler(
		repository.NewTaskRepository(gormDB),
		repository.NewProjectRepository(gormDB),
	)

	r := gin.Default()
	r.GET("/projects/:id/lastplanner", plannerHandler.GetGrid)

	projectID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE id = .* LIMIT 1`).
		WithArgs(projectID).
		WillReturnError(gorm.ErrRecordNotFound)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/lastplanner", nil)

	// Act
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Project not found", response["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttachment_ProjectNotFound(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	gormDB, mock := setupHandlerDB(t)
	attachmentHandler := handler.NewAttachmentHandler(
		repository.NewAttachmentRepository(gormDB),
		repository.NewProjectRepository(gormDB),
	)

	r := gin.Default()
	r.POST("/attachments", attachmentHandler.Create)

	projectID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE id = .* LIMIT 1`).
		WithArgs(projectID).
		WillReturnError(gorm.ErrRecordNotFound)

	reqBody := handler.AttachmentRequest{
		ProjectID: projectID.String(),
		Name:      "blueprint.pdf",
		URL:       "https://files.example.com/blueprint.pdf",
		Type:      "application/pdf",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/attachments", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Project not found", response["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
