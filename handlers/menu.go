package handlers

import (
	"net/http"
	"strings"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageID      *uint   `json:"image_id"`
}

// menuItemGate loads a menu item's parent restaurant and checks the caller
// may mutate it: admins always, owners only for their own restaurant.
func menuItemGate(c *gin.Context, restaurantID uint) (*models.Restaurant, bool) {
	user := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	if user.Role != models.RoleAdmin && restaurant.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return nil, false
	}
	return &restaurant, true
}

// CreateMenuItem adds an item to an approved restaurant's menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, ok := menuItemGate(c, req.RestaurantID)
	if !ok {
		return
	}
	if restaurant.Status != models.StatusApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Restaurant is not approved yet"})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Price:        req.Price,
		ImageID:      req.ImageID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "message": "Menu item added", "item": item})
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageID     *uint    `json:"image_id"`
}

// UpdateMenuItem edits a menu item (parent restaurant's owner or admin)
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if _, ok := menuItemGate(c, item.RestaurantID); !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		updates["description"] = strings.TrimSpace(req.Description)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		updates["price"] = *req.Price
	}
	if req.ImageID != nil {
		updates["image_id"] = *req.ImageID
	}

	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item (parent restaurant's owner or admin)
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if _, ok := menuItemGate(c, item.RestaurantID); !ok {
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
