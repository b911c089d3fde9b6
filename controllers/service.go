// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"serenityspa-backend/config"
	"serenityspa-backend/models"
	"serenityspa-backend/services"
	"serenityspa-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string            `json:"name" binding:"required"`
	Category        string            `json:"category"`
	Price           float64           `json:"price" binding:"required,min=0"`
	DurationLabel   string            `json:"durationLabel" binding:"required"`
	CardDescription string            `json:"cardDescription"`
	FullDescription string            `json:"fullDescription"`
	Benefits        models.StringList `json:"benefits"`
	Included        models.StringList `json:"included"`
	Featured        bool              `json:"featured"`
	ImageURL        string            `json:"imageUrl"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string            `json:"name"`
	Category        *string            `json:"category"`
	Price           *float64           `json:"price"`
	DurationLabel   *string            `json:"durationLabel"`
	CardDescription *string            `json:"cardDescription"`
	FullDescription *string            `json:"fullDescription"`
	Benefits        *models.StringList `json:"benefits"`
	Included        *models.StringList `json:"included"`
	Status          *string            `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Featured        *bool              `json:"featured"`
	ImageURL        *string            `json:"imageUrl"`
}

// GetCatalog returns the active catalog for the public site, cached in Redis.
func GetCatalog(c *gin.Context) {
	catalog, err := services.ActiveServices(c.Request.Context(), config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetServices retrieves all services, active or not, for the admin area.
func GetServices(c *gin.Context) {
	var list []models.Service
	if err := config.DB.Order("name").Find(&list).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateService creates a new catalog entry
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:            input.Name,
		Category:        input.Category,
		Price:           input.Price,
		DurationLabel:   input.DurationLabel,
		CardDescription: input.CardDescription,
		FullDescription: input.FullDescription,
		Benefits:        input.Benefits,
		Included:        input.Included,
		Status:          models.ServiceActive,
		Featured:        input.Featured,
		ImageURL:        input.ImageURL,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	services.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.DurationLabel != nil {
		service.DurationLabel = *input.DurationLabel
	}
	if input.CardDescription != nil {
		service.CardDescription = *input.CardDescription
	}
	if input.FullDescription != nil {
		service.FullDescription = *input.FullDescription
	}
	if input.Benefits != nil {
		service.Benefits = *input.Benefits
	}
	if input.Included != nil {
		service.Included = *input.Included
	}
	if input.Status != nil {
		service.Status = *input.Status
	}
	if input.Featured != nil {
		service.Featured = *input.Featured
	}
	if input.ImageURL != nil {
		service.ImageURL = *input.ImageURL
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	services.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	services.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
