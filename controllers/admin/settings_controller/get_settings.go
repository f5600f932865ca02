package settings_controller

import (
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetSettings godoc
// @Summary Get settings
// @Description Return the configuration map. When the storefront is unreachable this serves the built-in defaults so every known key still resolves.
// @Tags Admin - Settings
// @Produce json
// @Router /admin/settings [get]
func GetSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	s := settings.Load(ctx)

	message := "Settings retrieved successfully"
	if settings.UsingFallback() {
		message = "Storefront unreachable, serving default settings"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, s))
}
