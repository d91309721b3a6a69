package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/services"
)

type PerformanceHandler struct {
	Service *services.PerformanceService
}

func NewPerformanceHandler(service *services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{Service: service}
}

// @Summary      Per-user performance
// @Tags         Analytics
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.UserPerformance
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /analytics/user-performance/{id} [get]
func (h *PerformanceHandler) UserPerformance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	perf, err := h.Service.UserPerformance(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if perf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, perf)
}

// @Summary      Sales leaderboard
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.LeaderboardEntry
// @Failure      500  {object}  map[string]string
// @Router       /analytics/leaderboard [get]
func (h *PerformanceHandler) Leaderboard(c *gin.Context) {
	entries, err := h.Service.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
