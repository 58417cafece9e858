package rwn_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// PurchasePack godoc
// @Summary Purchase an RWN token pack
// @Description Simulated purchase: credits tokens + bonus to the authenticated user's balance. No payment is processed.
// @Tags RWN
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param purchase body models.PurchasePackRequest true "Pack to purchase"
// @Success 200 {object} models.ApiResponse{data=models.PurchasePackResponse} "Tokens credited"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Pack not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /rwn/purchase [post]
func (ctrl *Controller) PurchasePack(c *gin.Context) {
	var req models.PurchasePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var pack *models.RWNPack
	for i := range ctrl.packs {
		if ctrl.packs[i].ID == req.PackID {
			pack = &ctrl.packs[i]
			break
		}
	}
	if pack == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Pack not found"))
		return
	}

	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	credited := pack.Tokens + pack.Bonus
	user, err := ctrl.auth.CreditRWN(c.Request.Context(), session, credited)
	if err != nil {
		log.Printf("[rwn.purchase] error: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	log.Printf("[rwn.purchase] credited %d RWN to %s", credited, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tokens credited", models.PurchasePackResponse{
		Credited:   credited,
		RWNBalance: user.RWNBalance,
	}))
}
