package controllers

import (
	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateCustomer registers a customer on the commerce backend
func CreateCustomer(c *gin.Context) {
	utils.LogInfo("CreateCustomer called")

	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. name and email are required", err.Error())
		return
	}

	if !utils.ValidateEmail(req.Email) {
		utils.ValidationError(c, "Invalid customer data", utils.FieldValidationErrors{
			{Field: "email", Message: "must be a valid email address"},
		})
		return
	}

	customer, err := backendClient.CreateCustomer(c.Request.Context(), models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		utils.LogError("Failed to create customer %s: %v", req.Email, err)
		utils.BadGateway(c, "Could not create customer, please try again", err.Error())
		return
	}

	utils.Created(c, "Customer created successfully", gin.H{
		"customer": customer,
	})
}
