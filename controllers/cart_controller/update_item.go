package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// UpdateItem godoc
// @Summary Set a line item's quantity
// @Description Replaces the quantity for the (product, size, color) key. Zero or below removes the line item, same as DELETE.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.UpdateCartItemRequest true "Item and new quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [patch]
func (ctrl *Controller) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ledger, session, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	ledger.UpdateQuantity(req.ProductID, req.Size, req.Color, req.Quantity)
	ctrl.saveAndRespond(c, ledger, session, "Cart updated")
}
