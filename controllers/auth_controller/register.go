package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/auth"
	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
	"github.com/Reown-Commerce/reown-storefront-backend/utils"
)

// Register godoc
// @Summary Register a new account
// @Description Mocked registration: succeeds after a simulated delay given non-empty fields. The new account starts with a zero RWN balance.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse} "Account created"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/register [post]
func (ctrl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	user, err := ctrl.auth.Register(c.Request.Context(), session, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
			return
		}
		log.Printf("[auth.register] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, session)
	if err != nil {
		log.Printf("[auth.register] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	log.Printf("[auth.register] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		User:  user,
		Token: token,
	}))
}
