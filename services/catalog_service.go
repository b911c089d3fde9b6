// services/catalog_service.go
package services

import (
	"context"
	"time"

	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"gorm.io/gorm"
)

const catalogCacheKey = "services:active"

const catalogCacheTTL = 5 * time.Minute

// ActiveServices returns the bookable catalog, served from Redis when warm.
// The same snapshot feeds the public catalog endpoint and the chat assistant.
func ActiveServices(ctx context.Context, db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	if utils.CacheGetJSON(ctx, catalogCacheKey, &services) {
		return services, nil
	}

	if err := db.Where("status = ?", models.ServiceActive).Order("name").Find(&services).Error; err != nil {
		return nil, err
	}

	utils.CacheSetJSON(ctx, catalogCacheKey, services, catalogCacheTTL)
	return services, nil
}

// InvalidateCatalog drops the cached snapshot after a catalog write.
func InvalidateCatalog(ctx context.Context) {
	utils.CacheInvalidate(ctx, catalogCacheKey)
}
