package inventory_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdjustInventory godoc
// @Summary Adjust product quantity
// @Description Set an absolute stock quantity for a product. The only adjustment type accepted is "set"; the storefront computes availability itself.
// @Tags Admin - Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param payload body models.AdjustInventoryRequest true "Adjustment payload"
// @Router /admin/inventory/{id}/adjust [post]
func AdjustInventory(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.inventory.adjust] bad request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := client.WithToken(middleware.Token(c)).AdjustInventory(ctx, productID, req); err != nil {
		log.Printf("[admin.inventory.adjust] upstream failed product=%s: %v", productID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[admin.inventory.adjust] product=%s quantity=%d", productID, req.Quantity)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory adjusted successfully", nil))
}
