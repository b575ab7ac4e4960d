package http

import (
	"net/http"
	"strconv"

	"vitacoin/internal/usecase"
	"vitacoin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	queryUseCase usecase.QueryUseCase
	logger       *logger.Logger
}

func NewQueryHandler(queryUseCase usecase.QueryUseCase, logger *logger.Logger) *QueryHandler {
	return &QueryHandler{
		queryUseCase: queryUseCase,
		logger:       logger,
	}
}

// Transactions godoc
// @Summary      List transactions
// @Description  List transactions newest first, optionally filtered by user
// @Tags         transactions
// @Produce      json
// @Param        user_id query string false "Filter by user id"
// @Param        limit   query int    false "Page size"
// @Param        offset  query int    false "Page offset"
// @Success      200  {array}  entity.Transaction
// @Router       /transactions [get]
func (h *QueryHandler) Transactions(c *gin.Context) {
	userID := c.Query("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.queryUseCase.Transactions(userID, limit, offset)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Stats godoc
// @Summary      System totals
// @Description  Aggregate user, transaction and coin totals from a single consistent snapshot
// @Tags         stats
// @Produce      json
// @Success      200  {object}  entity.Totals
// @Router       /stats [get]
func (h *QueryHandler) Stats(c *gin.Context) {
	totals, err := h.queryUseCase.Totals()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Leaderboard godoc
// @Summary      Coin leaderboard
// @Description  Top users by balance, ties broken by earliest registration
// @Tags         stats
// @Produce      json
// @Param        limit query int false "Number of users to return"
// @Success      200  {array}  entity.User
// @Router       /stats/leaderboard [get]
func (h *QueryHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.queryUseCase.Leaderboard(limit)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
