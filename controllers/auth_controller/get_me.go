package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// GetMe godoc
// @Summary Get the current user
// @Description Returns the authenticated session's user record, including the RWN balance.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /auth/me [get]
func (ctrl *Controller) GetMe(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	user, ok := ctrl.auth.CurrentUser(c.Request.Context(), session)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", user))
}
