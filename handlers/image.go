package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// UploadImage stores an image blob. Owner/admin only; the type check
// sniffs content rather than trusting the filename extension.
func UploadImage(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Role != models.RoleOwner && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Requires restaurant owner privileges"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	if fileHeader.Size > config.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, config.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	if int64(len(data)) > config.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	mtype := mimetype.Detect(data)
	if !allowedImageTypes[mtype.String()] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		return
	}

	image := models.Image{
		FileName:    filepath.Base(fileHeader.Filename),
		ContentType: mtype.String(),
		Data:        data,
		UploaderID:  user.ID,
	}
	if restaurantID := c.PostForm("restaurant_id"); restaurantID != "" {
		if id, err := strconv.ParseUint(restaurantID, 10, 64); err == nil {
			rid := uint(id)
			var attached int64
			config.DB.Model(&models.Image{}).Where("restaurant_id = ?", rid).Count(&attached)
			if attached >= config.MaxRestaurantImages {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 5 images allowed"})
				return
			}
			image.RestaurantID = &rid
		}
	}
	if menuItemID := c.PostForm("menu_item_id"); menuItemID != "" {
		if id, err := strconv.ParseUint(menuItemID, 10, 64); err == nil {
			mid := uint(id)
			image.MenuItemID = &mid
		}
	}

	if err := config.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"file_id": image.ID})
}

// GetImage serves an image blob by id (public)
func GetImage(c *gin.Context) {
	var image models.Image
	if err := config.DB.First(&image, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.Data(http.StatusOK, image.ContentType, image.Data)
}
