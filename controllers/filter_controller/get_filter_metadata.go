package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Controller serves filter facet metadata for the sidebar.
type Controller struct {
	source catalog.Source
}

func New(source catalog.Source) *Controller {
	return &Controller{source: source}
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns distinct categories, brands, colours, sizes, and the price range for storefront filters
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func (ctrl *Controller) GetFilterMetadata(c *gin.Context) {
	all, err := ctrl.source.Load(c.Request.Context())
	if err != nil {
		log.Printf("ERROR loading catalog for facets: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", catalog.Facets(all)))
}
