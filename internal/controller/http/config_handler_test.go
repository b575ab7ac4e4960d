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

func TestUpsertConfig_Success(t *testing.T) {
	mockUseCase := new(MockConfigUseCase)
	logger := logger.New()
	handler := NewConfigHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/reward-configs/:activityType", handler.Upsert)

	mockConfig := &entity.ActivityConfig{
		ActivityType: "quiz_complete",
		RewardValue:  25,
		PenaltyValue: 10,
	}

	mockUseCase.On("Upsert", "quiz_complete", 25, 10).Return(mockConfig, nil)

	upsertJSON := `{"reward_value":25,"penalty_value":10}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reward-configs/quiz_complete", bytes.NewBufferString(upsertJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Reward configuration updated successfully", response["message"])

	mockUseCase.AssertExpectations(t)
}

func TestUpsertConfig_ZeroValues(t *testing.T) {
	mockUseCase := new(MockConfigUseCase)
	logger := logger.New()
	handler := NewConfigHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/reward-configs/:activityType", handler.Upsert)

	mockConfig := &entity.ActivityConfig{
		ActivityType: "purchase",
		RewardValue:  0,
		PenaltyValue: 0,
	}

	// Explicit zeroes are valid values, not missing fields.
	mockUseCase.On("Upsert", "purchase", 0, 0).Return(mockConfig, nil)

	upsertJSON := `{"reward_value":0,"penalty_value":0}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reward-configs/purchase", bytes.NewBufferString(upsertJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpsertConfig_MissingField(t *testing.T) {
	mockUseCase := new(MockConfigUseCase)
	logger := logger.New()
	handler := NewConfigHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/reward-configs/:activityType", handler.Upsert)

	upsertJSON := `{"reward_value":25}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reward-configs/quiz_complete", bytes.NewBufferString(upsertJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Upsert")
}

func TestUpsertConfig_NegativeValues(t *testing.T) {
	mockUseCase := new(MockConfigUseCase)
	logger := logger.New()
	handler := NewConfigHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/reward-configs/:activityType", handler.Upsert)

	mockUseCase.On("Upsert", "quiz_complete", -5, 10).Return(nil, entity.ErrInvalidAmount)

	upsertJSON := `{"reward_value":-5,"penalty_value":10}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reward-configs/quiz_complete", bytes.NewBufferString(upsertJSON))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListConfigs_Success(t *testing.T) {
	mockUseCase := new(MockConfigUseCase)
	logger := logger.New()
	handler := NewConfigHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/reward-configs", handler.List)

	mockConfigs := []*entity.ActivityConfig{
		{ActivityType: "daily_login", RewardValue: 5, PenaltyValue: 2},
		{ActivityType: "quiz_complete", RewardValue: 25, PenaltyValue: 10},
	}

	mockUseCase.On("List").Return(mockConfigs, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reward-configs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []*entity.ActivityConfig
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}
