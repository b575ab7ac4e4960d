package http

import (
	"errors"
	"net/http"

	"vitacoin/internal/simulation"
	"vitacoin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DemoHandler struct {
	simulator *simulation.Simulator
	logger    *logger.Logger
}

func NewDemoHandler(simulator *simulation.Simulator, logger *logger.Logger) *DemoHandler {
	return &DemoHandler{
		simulator: simulator,
		logger:    logger,
	}
}

// SimulateActivity godoc
// @Summary      Simulate one activity event
// @Description  Pick a random user and activity type and post a randomly-biased outcome
// @Tags         demo
// @Produce      json
// @Success      201  {object}  entity.LedgerResult
// @Failure      400  {object}  map[string]string
// @Router       /demo/simulate-activity [post]
func (h *DemoHandler) SimulateActivity(c *gin.Context) {
	result, err := h.simulator.SimulateActivity()
	if err != nil {
		if errors.Is(err, simulation.ErrNoUsers) || errors.Is(err, simulation.ErrNoActivities) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to simulate activity: %v", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SimulatePurchase godoc
// @Summary      Simulate one purchase
// @Description  Pick a user who can afford a random catalog item and post the purchase
// @Tags         demo
// @Produce      json
// @Success      201  {object}  entity.LedgerResult
// @Failure      400  {object}  map[string]string
// @Router       /demo/simulate-purchase [post]
func (h *DemoHandler) SimulatePurchase(c *gin.Context) {
	result, err := h.simulator.SimulatePurchase()
	if err != nil {
		if errors.Is(err, simulation.ErrNoBuyers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to simulate purchase: %v", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
