package controllers

import (
	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-gonic/gin"
)

// GetDelivery returns a fulfillment record by id
func GetDelivery(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.BadRequest(c, "Delivery id is required", nil)
		return
	}

	delivery, err := backendClient.GetDelivery(c.Request.Context(), id)
	if err != nil {
		utils.LogError("Failed to fetch delivery %s: %v", id, err)
		utils.NotFound(c, "Delivery not found")
		return
	}

	utils.Success(c, "Delivery retrieved successfully", gin.H{
		"delivery": delivery,
	})
}
