package handlers

import (
	"net/http"
	"strings"

	"closetable-api/config"
	"closetable-api/models"
	"closetable-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminListUsers returns all users (admin only). Password hashes never
// serialize (json:"-" on the model).
func AdminListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", models.Role(role))
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// AdminUpdateUserRole changes a user's role (admin only)
func AdminUpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer, owner, or admin"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := config.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// AdminDeleteUser removes a user account (admin only)
func AdminDeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// AdminListRestaurants returns restaurants by review status, defaulting
// to the pending approval queue (admin only)
func AdminListRestaurants(c *gin.Context) {
	status := models.RestaurantStatus(c.DefaultQuery("status", string(models.StatusPending)))

	var restaurants []models.Restaurant
	config.DB.Preload("Owner").Where("status = ?", status).Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

type ReviewDecisionRequest struct {
	Notes string `json:"notes"`
}

func adminSetRestaurantStatus(c *gin.Context, to models.RestaurantStatus) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req ReviewDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := statemachine.CanTransitionRestaurant(restaurant.Status, to, statemachine.ActorAdmin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             err.Error(),
			"valid_transitions": statemachine.RestaurantStatesFrom(restaurant.Status),
		})
		return
	}

	updates := map[string]interface{}{
		"status":      to,
		"admin_notes": strings.TrimSpace(req.Notes),
	}
	if err := config.DB.Model(&restaurant).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant " + string(to), "status": to})
}

// AdminApproveRestaurant moves a listing to approved (admin only)
func AdminApproveRestaurant(c *gin.Context) {
	adminSetRestaurantStatus(c, models.StatusApproved)
}

// AdminRejectRestaurant moves a listing to rejected (admin only)
func AdminRejectRestaurant(c *gin.Context) {
	adminSetRestaurantStatus(c, models.StatusRejected)
}
