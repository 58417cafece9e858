package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// RemoveItem godoc
// @Summary Remove a line item from the cart
// @Description Deletes the (product, size, color) line item. Removing an absent item is a no-op, not an error.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.RemoveCartItemRequest true "Item to remove"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [delete]
func (ctrl *Controller) RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ledger, session, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	ledger.RemoveItem(req.ProductID, req.Size, req.Color)
	ctrl.saveAndRespond(c, ledger, session, "Item removed from cart")
}
