package http

import (
	"net/http"

	"vitacoin/internal/usecase"
	"vitacoin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configUseCase usecase.ConfigUseCase
	logger        *logger.Logger
}

func NewConfigHandler(configUseCase usecase.ConfigUseCase, logger *logger.Logger) *ConfigHandler {
	return &ConfigHandler{
		configUseCase: configUseCase,
		logger:        logger,
	}
}

type UpsertConfigRequest struct {
	// Pointers so that an explicit zero is distinguishable from a missing field.
	RewardValue  *int `json:"reward_value" binding:"required"`
	PenaltyValue *int `json:"penalty_value" binding:"required"`
}

// Upsert godoc
// @Summary      Create or update a reward configuration
// @Description  Set the reward and penalty values for an activity type; names are lower-cased
// @Tags         reward-configs
// @Accept       json
// @Produce      json
// @Param        activityType path string true "Activity type name"
// @Param        request body UpsertConfigRequest true "Reward and penalty values"
// @Success      200  {object}  entity.ActivityConfig
// @Failure      400  {object}  map[string]string
// @Router       /reward-configs/{activityType} [put]
func (h *ConfigHandler) Upsert(c *gin.Context) {
	activityType := c.Param("activityType")

	var req UpsertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.configUseCase.Upsert(activityType, *req.RewardValue, *req.PenaltyValue)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to upsert reward config: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reward configuration updated successfully",
		"config":  cfg,
	})
}

// List godoc
// @Summary      List reward configurations
// @Description  List all activity reward configurations, most recently updated first
// @Tags         reward-configs
// @Produce      json
// @Success      200  {array}  entity.ActivityConfig
// @Router       /reward-configs [get]
func (h *ConfigHandler) List(c *gin.Context) {
	configs, err := h.configUseCase.List()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, configs)
}
