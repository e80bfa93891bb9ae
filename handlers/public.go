package handlers

import (
	"net/http"
	"strings"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
)

// optionalUser resolves the caller when a bearer token happens to be
// present on an otherwise public route. Returns nil for anonymous or
// invalid credentials; public routes never fail on a bad token.
func optionalUser(c *gin.Context) *models.User {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := middleware.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil || claims.TokenType != middleware.TokenTypeAccess || middleware.IsTokenRevoked(claims.ID) {
		return nil
	}
	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return nil
	}
	return &user
}

// ListRestaurants returns approved restaurants (public), filterable by
// name and cuisine
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("status = ?", models.StatusApproved)

	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant. Listings that are not
// approved resolve to 404 for everyone except their owner and admins.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if restaurant.Status != models.StatusApproved {
		user := optionalUser(c)
		if user == nil || (user.Role != models.RoleAdmin && user.ID != restaurant.OwnerID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListMenuItems returns menu items, optionally for one restaurant (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// ListReviews returns reviews, optionally for one restaurant (public)
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	query := config.DB
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Order("created_at desc").Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}
