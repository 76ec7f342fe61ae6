package controllers

import (
	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog from the commerce backend
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	products, err := backendClient.GetProducts(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.BadGateway(c, "Could not load products, please try again", err.Error())
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}
