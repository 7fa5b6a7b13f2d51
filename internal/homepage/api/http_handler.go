package api

import (
	"net/http"

	"github.com/galihpp/storefront-catalog/internal/homepage/service"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/gin-gonic/gin"
)

type HomepageHandler struct {
	homepageService service.HomepageService
}

func NewHomepageHandler(hs service.HomepageService) *HomepageHandler {
	return &HomepageHandler{homepageService: hs}
}

func (h *HomepageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/homepage", h.GetHomepage)
}

func (h *HomepageHandler) GetHomepage(c *gin.Context) {
	feed, err := h.homepageService.GetHomepage(c.Request.Context())
	if err != nil {
		logger.Error("GetHomepage: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve homepage"})
		return
	}
	c.JSON(http.StatusOK, feed)
}
