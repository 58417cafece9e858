package auth_controller

import (
	"github.com/Reown-Commerce/reown-storefront-backend/auth"
)

// Controller serves the mocked login/register flow. The authenticator is
// injected so the credential check stays behind its interface.
type Controller struct {
	auth auth.Authenticator
}

func New(a auth.Authenticator) *Controller {
	return &Controller{auth: a}
}
