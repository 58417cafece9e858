package product_controller

import (
	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
)

// Controller serves the public product endpoints. The catalog source is
// injected at startup (embedded seed or database).
type Controller struct {
	source catalog.Source
}

func New(source catalog.Source) *Controller {
	return &Controller{source: source}
}
