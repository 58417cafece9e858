package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Returns the cart's line items, visibility flag, and derived totals (items, USD, RWN)
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [get]
func (ctrl *Controller) GetCart(c *gin.Context) {
	ledger, _, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartResponse(ledger)))
}
