package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds the chosen (product, size, color). Repeating the same combination accumulates quantity instead of duplicating the line item.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [post]
func (ctrl *Controller) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ledger, session, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	ledger.AddItem(req.Product, req.Size, req.Color, req.Quantity)
	ctrl.saveAndRespond(c, ledger, session, "Item added to cart")
}
