package http

import (
	"net/http"

	"vitacoin/internal/entity"
	"vitacoin/internal/usecase"
	"vitacoin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        *logger.Logger
}

func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

type ReportActivityRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	ActivityType string `json:"activity_type" binding:"required"`
	Success      *bool  `json:"success" binding:"required"`
}

// ReportActivity godoc
// @Summary      Report an activity outcome
// @Description  Resolve the reward/penalty amount from configuration and post it to the user's ledger
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        request body ReportActivityRequest true "Activity outcome"
// @Success      201  {object}  entity.LedgerResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /activities/report [post]
func (h *LedgerHandler) ReportActivity(c *gin.Context) {
	var req ReportActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ledgerUseCase.Apply(usecase.ApplyInput{
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
		Success:      *req.Success,
		ClampFloor:   true,
	})
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to apply activity: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

type CreateTransactionRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
	Description string `json:"description"`
	// AllowNegative lets administrative corrections push a balance below
	// zero; automatic flows always clamp.
	AllowNegative bool `json:"allow_negative"`
}

// CreateTransaction godoc
// @Summary      Create an explicit transaction
// @Description  Post a manually-specified reward or penalty, bypassing activity configuration
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction details"
// @Success      201  {object}  entity.LedgerResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions [post]
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ledgerUseCase.ApplyExplicit(usecase.ApplyExplicitInput{
		UserID:      req.UserID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		ClampFloor:  !req.AllowNegative,
	})
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create transaction: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction created successfully",
		"transaction": result.Transaction,
		"balance":     result.Balance,
	})
}
