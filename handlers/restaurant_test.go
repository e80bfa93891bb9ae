package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"closetable-api/config"
	"closetable-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantPromotesCustomer(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "customer@example.com", models.RoleCustomer)

	w := doJSON(r, "POST", "/api/restaurants", tokenFor(t, user), map[string]string{
		"name":    "Chez Ada",
		"address": "1 Analytical St",
		"cuisine": "french",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var fresh models.User
	require.NoError(t, config.DB.First(&fresh, user.ID).Error)
	assert.Equal(t, models.RoleOwner, fresh.Role)

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("owner_id = ?", user.ID).First(&restaurant).Error)
	assert.Equal(t, models.StatusPending, restaurant.Status)
}

func TestApprovalLifecycle(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleCustomer)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	w := doJSON(r, "POST", "/api/restaurants", tokenFor(t, owner), map[string]string{
		"name":    "Chez Ada",
		"address": "1 Analytical St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("owner_id = ?", owner.ID).First(&restaurant).Error)

	// Pending restaurants are invisible to the public list and detail
	w = doJSON(r, "GET", "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeBody(t, w)["count"])

	w = doJSON(r, "GET", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The owner still sees their own pending listing
	w = doJSON(r, "GET", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin approval makes it public
	w = doJSON(r, "PUT", fmt.Sprintf("/api/admin/restaurants/%d/approve", restaurant.ID), tokenFor(t, admin),
		map[string]string{"notes": "looks good"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])
}

func TestApprovalIsAdminOnly(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	restaurant := createRestaurant(t, owner, models.StatusPending)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/admin/restaurants/%d/approve", restaurant.ID), tokenFor(t, owner), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// A non-admin edit always sends the listing back to pending, whatever
// state it was in.
func TestOwnerUpdateResetsStatusToPending(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	restaurant := createRestaurant(t, owner, models.StatusApproved)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner),
		map[string]string{"description": "now with terrace"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.Restaurant
	require.NoError(t, config.DB.First(&fresh, restaurant.ID).Error)
	assert.Equal(t, models.StatusPending, fresh.Status)
}

func TestAdminUpdateKeepsStatus(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	restaurant := createRestaurant(t, owner, models.StatusApproved)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, admin),
		map[string]string{"description": "fixed typo"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.Restaurant
	require.NoError(t, config.DB.First(&fresh, restaurant.ID).Error)
	assert.Equal(t, models.StatusApproved, fresh.Status)
}

func TestUpdateRestaurantForbiddenForStranger(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	stranger := createUser(t, "stranger@example.com", models.RoleOwner)
	restaurant := createRestaurant(t, owner, models.StatusApproved)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, stranger),
		map[string]string{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func attachImages(t *testing.T, restaurant *models.Restaurant, uploaderID uint, n int) []models.Image {
	t.Helper()
	images := make([]models.Image, 0, n)
	for i := 0; i < n; i++ {
		img := models.Image{FileName: fmt.Sprintf("img-%d.png", i), ContentType: "image/png", UploaderID: uploaderID}
		if restaurant != nil {
			img.RestaurantID = &restaurant.ID
		}
		require.NoError(t, config.DB.Create(&img).Error)
		images = append(images, img)
	}
	return images
}

func TestImageCapEnforcedOnUpdate(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	restaurant := createRestaurant(t, owner, models.StatusApproved)

	attachImages(t, restaurant, owner.ID, 5)
	extra := attachImages(t, nil, owner.ID, 1)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner),
		map[string]interface{}{"images": []string{fmt.Sprint(extra[0].ID)}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The list is unchanged and the update did not go through at all
	var attached int64
	config.DB.Model(&models.Image{}).Where("restaurant_id = ?", restaurant.ID).Count(&attached)
	assert.EqualValues(t, 5, attached)

	var fresh models.Restaurant
	require.NoError(t, config.DB.First(&fresh, restaurant.ID).Error)
	assert.Equal(t, models.StatusApproved, fresh.Status)
}

func TestImageUpdateDropsMalformedIDs(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	restaurant := createRestaurant(t, owner, models.StatusApproved)
	loose := attachImages(t, nil, owner.ID, 1)

	w := doJSON(r, "PUT", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner),
		map[string]interface{}{"images": []string{"not-a-number", "999999", fmt.Sprint(loose[0].ID)}})
	require.Equal(t, http.StatusOK, w.Code)

	var attached int64
	config.DB.Model(&models.Image{}).Where("restaurant_id = ?", restaurant.ID).Count(&attached)
	assert.EqualValues(t, 1, attached)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)
	diner := createUser(t, "diner@example.com", models.RoleCustomer)
	restaurant := createRestaurant(t, owner, models.StatusApproved)

	require.NoError(t, config.DB.Create(&models.MenuItem{RestaurantID: restaurant.ID, Name: "Soup", Price: 7.5}).Error)
	require.NoError(t, config.DB.Create(&models.Reservation{UserID: diner.ID, RestaurantID: restaurant.ID, PartySize: 2, Status: models.ReservationConfirmed}).Error)
	require.NoError(t, config.DB.Create(&models.Review{UserID: diner.ID, RestaurantID: restaurant.ID, Rating: 4}).Error)

	w := doJSON(r, "DELETE", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner), nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, model := range []interface{}{&models.MenuItem{}, &models.Reservation{}, &models.Review{}} {
		var count int64
		config.DB.Model(model).Where("restaurant_id = ?", restaurant.ID).Count(&count)
		assert.Zero(t, count, "no dependents may remain after cascade delete")
	}
	var count int64
	config.DB.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Count(&count)
	assert.Zero(t, count)
}

func TestListRestaurantsFilters(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner@example.com", models.RoleOwner)

	italian := models.Restaurant{OwnerID: owner.ID, Name: "Trattoria Uno", Cuisine: "italian", Status: models.StatusApproved}
	french := models.Restaurant{OwnerID: owner.ID, Name: "Le Deux", Cuisine: "french", Status: models.StatusApproved}
	require.NoError(t, config.DB.Create(&italian).Error)
	require.NoError(t, config.DB.Create(&french).Error)

	w := doJSON(r, "GET", "/api/restaurants?cuisine=italian", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = doJSON(r, "GET", "/api/restaurants?name=Deux", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])
}
