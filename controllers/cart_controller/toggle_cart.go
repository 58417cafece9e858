package cart_controller

import (
	"github.com/gin-gonic/gin"
)

// ToggleCart godoc
// @Summary Toggle the cart sidebar
// @Description Flips the open/closed visibility flag. Pure UI state; totals are unaffected.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /cart/toggle [post]
func (ctrl *Controller) ToggleCart(c *gin.Context) {
	ledger, session, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	ledger.Toggle()
	ctrl.saveAndRespond(c, ledger, session, "Cart visibility toggled")
}
