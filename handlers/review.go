package handlers

import (
	"net/http"
	"strings"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

// clampRating forces any input into [1,5] instead of rejecting it.
func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// CreateReview posts a review against a restaurant
func CreateReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	review := models.Review{
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
		Rating:       clampRating(req.Rating),
		Comment:      strings.TrimSpace(req.Comment),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": review.ID, "review": review})
}

// DeleteReview removes a review; only the author or an admin
func DeleteReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if user.Role != models.RoleAdmin && review.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
