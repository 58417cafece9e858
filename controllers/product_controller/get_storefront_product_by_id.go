package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID, including the per-item RWN price for eligible products
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (ctrl *Controller) GetStorefrontProductByID(c *gin.Context) {
	productID := c.Param("id")

	all, err := ctrl.source.Load(c.Request.Context())
	if err != nil {
		log.Printf("ERROR loading catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	for _, p := range all {
		if p.ID == productID {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", gin.H{
				"product":        p,
				"rwn_card_price": p.RWNCardPrice(),
			}))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
