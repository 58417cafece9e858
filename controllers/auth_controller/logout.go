package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session's authenticated flag and the auth cookie. The account survives so the session can log back in.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/logout [post]
func (ctrl *Controller) Logout(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	if err := ctrl.auth.Logout(c.Request.Context(), session); err != nil {
		log.Printf("[auth.logout] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Clear the cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
	log.Printf("[auth.logout] token cleared from cookie")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
