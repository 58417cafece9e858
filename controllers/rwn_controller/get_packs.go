package rwn_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/auth"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Controller serves the Get RWN token pack page.
type Controller struct {
	packs []models.RWNPack
	auth  auth.Authenticator
}

func New(packs []models.RWNPack, a auth.Authenticator) *Controller {
	return &Controller{packs: packs, auth: a}
}

// GetPacks godoc
// @Summary List RWN token packs
// @Description Returns the purchasable token bundles with prices and bonus amounts.
// @Tags RWN
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.RWNPack}
// @Router /store/rwn/packs [get]
func (ctrl *Controller) GetPacks(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "RWN packs fetched successfully", ctrl.packs))
}
