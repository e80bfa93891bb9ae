package handlers

import (
	"net/http"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
)

type SaveRestaurantRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// SaveRestaurant bookmarks an approved restaurant for the caller.
// Membership only; saving grants no rights over the restaurant.
func SaveRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req SaveRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND status = ?", req.RestaurantID, models.StatusApproved).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant"})
		return
	}

	if err := config.DB.Model(user).Association("SavedRestaurants").Append(&restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant saved"})
}

// ListSavedRestaurants returns the caller's saved restaurants that are
// still approved
func ListSavedRestaurants(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var saved []models.Restaurant
	err := config.DB.Model(user).
		Where("status = ?", models.StatusApproved).
		Association("SavedRestaurants").
		Find(&saved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(saved), "restaurants": saved})
}

// UnsaveRestaurant drops a bookmark
func UnsaveRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)

	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing restaurant_id"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if err := config.DB.Model(user).Association("SavedRestaurants").Delete(&restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant unsaved"})
}
