package handlers

import (
	"net/http"
	"time"

	"closetable-api/config"
	"closetable-api/middleware"
	"closetable-api/models"
	"closetable-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Datetime     string `json:"datetime" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required,min=1"`
}

// ListReservations returns reservations scoped to the caller: customers
// see their own, owners see their restaurants', admins see everything.
func ListReservations(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var reservations []models.Reservation
	query := config.DB.Preload("Restaurant")

	switch user.Role {
	case models.RoleCustomer:
		query = query.Where("user_id = ?", user.ID)
	case models.RoleOwner:
		query = query.Where(
			"restaurant_id IN (?)",
			config.DB.Model(&models.Restaurant{}).Select("id").Where("owner_id = ?", user.ID),
		)
	case models.RoleAdmin:
		// no scoping
	}

	query.Order("datetime").Find(&reservations)
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// CreateReservation books a table. The target restaurant must be approved
// at this instant; a later de-approval does not touch existing bookings.
func CreateReservation(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	datetime, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid datetime, expected RFC 3339"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND status = ?", req.RestaurantID, models.StatusApproved).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant not available"})
		return
	}

	reservation := models.Reservation{
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
		Datetime:     datetime,
		PartySize:    req.PartySize,
		Status:       models.ReservationConfirmed,
	}
	if err := config.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reservation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": reservation.ID, "reservation": reservation})
}

// reservationGate loads a reservation and checks the caller may touch it:
// the reserving user, the restaurant's owner, or an admin. The returned
// actor reflects which of those hats the caller is wearing.
func reservationGate(c *gin.Context) (*models.Reservation, statemachine.Actor, bool) {
	user := middleware.CurrentUser(c)

	var reservation models.Reservation
	if err := config.DB.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return nil, "", false
	}

	if user.Role == models.RoleAdmin {
		return &reservation, statemachine.ActorAdmin, true
	}

	var owned int64
	config.DB.Model(&models.Restaurant{}).
		Where("id = ? AND owner_id = ?", reservation.RestaurantID, user.ID).
		Count(&owned)
	if owned > 0 {
		return &reservation, statemachine.ActorOwner, true
	}

	if reservation.UserID == user.ID {
		return &reservation, statemachine.ActorCustomer, true
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Not your reservation"})
	return nil, "", false
}

type UpdateReservationRequest struct {
	Datetime  string                    `json:"datetime"`
	PartySize *int                      `json:"party_size"`
	Status    *models.ReservationStatus `json:"status"`
}

// UpdateReservation edits datetime/party size for anyone with access. The
// status field only moves for the restaurant's owner or an admin; a
// customer-supplied status is ignored, not an error.
func UpdateReservation(c *gin.Context) {
	reservation, actor, ok := reservationGate(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Datetime != "" {
		datetime, err := time.Parse(time.RFC3339, req.Datetime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid datetime, expected RFC 3339"})
			return
		}
		updates["datetime"] = datetime
	}
	if req.PartySize != nil {
		if *req.PartySize < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Party size must be positive"})
			return
		}
		updates["party_size"] = *req.PartySize
	}
	if req.Status != nil && actor != statemachine.ActorCustomer {
		if err := statemachine.CanTransitionReservation(reservation.Status, *req.Status, actor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["status"] = *req.Status
	}

	if err := config.DB.Model(reservation).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated", "reservation": reservation})
}

// CancelReservation is the delete-shaped cancel: canceled when the
// customer backs out, rejected when the owner or an admin turns it down.
// The row itself is never removed.
func CancelReservation(c *gin.Context) {
	reservation, actor, ok := reservationGate(c)
	if !ok {
		return
	}

	newStatus := statemachine.CancelStatusFor(actor)
	if err := statemachine.CanTransitionReservation(reservation.Status, newStatus, actor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(reservation).Update("status", newStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reservation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation " + string(newStatus), "status": newStatus})
}
