package settings_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// UpdateSettings godoc
// @Summary Update settings
// @Description Push a partial settings map to the storefront. Only the provided keys change; the local cache refreshes on the next read.
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Param payload body models.Settings true "Partial settings map"
// @Router /admin/settings [post]
func UpdateSettings(c *gin.Context) {
	var partial models.Settings
	if err := c.ShouldBindJSON(&partial); err != nil {
		log.Printf("[admin.settings.update] bad request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if len(partial) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No settings provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := settings.Save(ctx, partial); err != nil {
		log.Printf("[admin.settings.update] save failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated successfully", settings.Load(ctx)))
}
