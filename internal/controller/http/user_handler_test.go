package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitacoin/internal/entity"
	"vitacoin/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRegisterUser_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	logger := logger.New()
	handler := NewUserHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/users", handler.Register)

	mockUser := &entity.User{
		ID:       "user-123",
		Username: "alice_student",
		Email:    "alice@example.com",
		Coins:    0,
	}

	mockUseCase.On("Register", "alice_student", "alice@example.com").Return(mockUser, nil)

	registerJSON := `{"username":"alice_student","email":"alice@example.com"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(registerJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "User created successfully", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	logger := logger.New()
	handler := NewUserHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/users", handler.Register)

	mockUseCase.On("Register", "alice_student", "alice@example.com").Return(nil, entity.ErrUserExists)

	registerJSON := `{"username":"alice_student","email":"alice@example.com"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(registerJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	logger := logger.New()
	handler := NewUserHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/users", handler.Register)

	registerJSON := `{"username":"alice_student","email":"not-an-email"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users", bytes.NewBufferString(registerJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register")
}

func TestListUsers_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	logger := logger.New()
	handler := NewUserHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/users", handler.List)

	mockUsers := []*entity.User{
		{ID: "user-1", Username: "alice_student", Coins: 120},
		{ID: "user-2", Username: "bob_learner", Coins: 45},
	}

	mockUseCase.On("List").Return(mockUsers, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []*entity.User
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}
