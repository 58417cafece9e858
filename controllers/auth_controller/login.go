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

// Login godoc
// @Summary Log in
// @Description Mocked credential check: any non-empty email/password pair succeeds after a simulated delay. Returns the user record and a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse} "Login successful"
// @Failure 400 {object} models.ApiResponse "Invalid email or password"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return
	}

	user, err := ctrl.auth.Login(c.Request.Context(), session, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("[auth.login] invalid credentials: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, session)
	if err != nil {
		log.Printf("[auth.login] failed to generate token: %v", err)
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

	log.Printf("[auth.login] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthResponse{
		User:  user,
		Token: token,
	}))
}
