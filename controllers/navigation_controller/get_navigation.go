package navigation_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Controller serves the storefront menu tree.
type Controller struct {
	tree models.NavigationTree
}

func New(tree models.NavigationTree) *Controller {
	return &Controller{tree: tree}
}

// GetNavigation godoc
// @Summary Get the navigation tree
// @Description Returns the nested storefront menu plus the entries shown to authenticated users.
// @Tags Storefront - Navigation
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.NavigationTree}
// @Router /store/navigation [get]
func (ctrl *Controller) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigation fetched successfully", ctrl.tree))
}
