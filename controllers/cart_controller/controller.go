package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/cart"
	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
	"github.com/Reown-Commerce/reown-storefront-backend/store"
)

// Controller owns the cart endpoints. Every mutation loads the session's
// snapshot, applies one ledger operation, and saves unconditionally
// (last-writer-wins across tabs).
type Controller struct {
	store store.SnapshotStore
}

func New(s store.SnapshotStore) *Controller {
	return &Controller{store: s}
}

// loadLedger restores the session's ledger, or starts an empty one when no
// snapshot exists yet.
func (ctrl *Controller) loadLedger(c *gin.Context) (*cart.Ledger, string, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not resolved"))
		return nil, "", false
	}

	snap, err := ctrl.store.LoadCart(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return cart.New(), session, true
		}
		log.Printf("ERROR loading cart snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return nil, "", false
	}

	return cart.Restore(snap), session, true
}

// saveAndRespond persists the ledger and returns its full derived view.
func (ctrl *Controller) saveAndRespond(c *gin.Context, ledger *cart.Ledger, session, message string) {
	if err := ctrl.store.SaveCart(c.Request.Context(), session, ledger.Snapshot()); err != nil {
		log.Printf("ERROR saving cart snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, cartResponse(ledger)))
}

func cartResponse(ledger *cart.Ledger) models.CartResponse {
	return models.CartResponse{
		Items:  ledger.Items(),
		IsOpen: ledger.IsOpen(),
		Totals: ledger.Totals(),
	}
}
