package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salescrm/internal/services"
)

type SearchHandler struct {
	Service *services.SearchService
}

func NewSearchHandler(service *services.SearchService) *SearchHandler {
	return &SearchHandler{Service: service}
}

func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.Service.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
