package cart_controller

import (
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes all line items. The sidebar visibility flag is untouched.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [delete]
func (ctrl *Controller) ClearCart(c *gin.Context) {
	ledger, session, ok := ctrl.loadLedger(c)
	if !ok {
		return
	}

	ledger.Clear()
	ctrl.saveAndRespond(c, ledger, session, "Cart cleared")
}
