package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"
	"closetable-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}

// CreateRestaurant registers a new listing, pending admin review. A
// customer creating their first restaurant is silently promoted to owner
// before the role gate runs; already-elevated callers are unaffected.
func CreateRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if user.Role == models.RoleCustomer {
		if err := config.DB.Model(user).Update("role", models.RoleOwner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
			return
		}
		user.Role = models.RoleOwner
	}
	if user.Role != models.RoleOwner && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Requires restaurant owner privileges"})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     user.ID,
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Cuisine:     strings.TrimSpace(req.Cuisine),
		Description: strings.TrimSpace(req.Description),
		Status:      models.StatusPending,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         restaurant.ID,
		"message":    "Restaurant created. Waiting for admin approval.",
		"restaurant": restaurant,
	})
}

type UpdateRestaurantRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Cuisine     string   `json:"cuisine"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// UpdateRestaurant edits a listing. Only the owner or an admin may edit;
// a non-admin edit always sends the listing back to pending for
// re-review, whatever state it was in.
func UpdateRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if user.Role != models.RoleAdmin && restaurant.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Resolve image references first so a cap violation fails the whole
	// update before anything is written. Malformed or unknown ids are
	// dropped, not errors.
	var attach []models.Image
	if len(req.Images) > 0 {
		var existing int64
		config.DB.Model(&models.Image{}).Where("restaurant_id = ?", restaurant.ID).Count(&existing)

		for _, raw := range req.Images {
			imageID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				continue
			}
			var img models.Image
			if err := config.DB.First(&img, uint(imageID)).Error; err != nil {
				continue
			}
			if img.RestaurantID != nil && *img.RestaurantID == restaurant.ID {
				continue // already attached
			}
			attach = append(attach, img)
		}

		if int(existing)+len(attach) > config.MaxRestaurantImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 5 images allowed"})
			return
		}
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Address != "" {
		updates["address"] = strings.TrimSpace(req.Address)
	}
	if req.Cuisine != "" {
		updates["cuisine"] = strings.TrimSpace(req.Cuisine)
	}
	if req.Description != "" {
		updates["description"] = strings.TrimSpace(req.Description)
	}
	if restaurantActor(user, &restaurant) != statemachine.ActorAdmin {
		updates["status"] = models.StatusPending
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&restaurant).Updates(updates).Error; err != nil {
			return err
		}
		for i := range attach {
			if err := tx.Model(&attach[i]).Update("restaurant_id", restaurant.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("restaurant update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}

	config.DB.Preload("Images").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// DeleteRestaurant removes a listing and everything referencing it. The
// cascade runs inside one transaction so a partial failure cannot leave
// orphaned menu items, reservations or reviews behind.
func DeleteRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if user.Role != models.RoleAdmin && restaurant.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
	if err != nil {
		logrus.WithError(err).Error("restaurant cascade delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant and related data deleted"})
}

// restaurantActor maps the caller onto the transition actor relative to a
// restaurant: an owner acts as owner only for their own record, everyone
// else falls back to what their role grants.
func restaurantActor(user *models.User, restaurant *models.Restaurant) statemachine.Actor {
	actor := statemachine.ActorFor(user.Role)
	if actor == statemachine.ActorOwner && restaurant.OwnerID != user.ID {
		return statemachine.ActorCustomer
	}
	return actor
}
