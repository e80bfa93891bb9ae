package statemachine

import (
	"errors"

	"closetable-api/models"
)

// RestaurantTransition defines a valid status change and who can perform it
type RestaurantTransition struct {
	From  models.RestaurantStatus
	To    models.RestaurantStatus
	Actor Actor
}

// validRestaurantTransitions is the authoritative state machine definition.
// Approval and rejection are admin-only; any non-admin edit sends the
// listing back to pending for re-review. Rejection is not terminal.
var validRestaurantTransitions = []RestaurantTransition{
	// Admin review decisions
	{From: models.StatusPending, To: models.StatusApproved, Actor: ActorAdmin},
	{From: models.StatusPending, To: models.StatusRejected, Actor: ActorAdmin},
	// Soft terminals: a rejected listing may be re-approved, an approved
	// one may be taken down
	{From: models.StatusRejected, To: models.StatusApproved, Actor: ActorAdmin},
	{From: models.StatusApproved, To: models.StatusRejected, Actor: ActorAdmin},
	// Owner edits force re-review
	{From: models.StatusApproved, To: models.StatusPending, Actor: ActorOwner},
	{From: models.StatusRejected, To: models.StatusPending, Actor: ActorOwner},
}

type restaurantTransitionKey struct {
	From  models.RestaurantStatus
	To    models.RestaurantStatus
	Actor Actor
}

var restaurantTransitionMap = func() map[restaurantTransitionKey]bool {
	m := make(map[restaurantTransitionKey]bool)
	for _, t := range validRestaurantTransitions {
		m[restaurantTransitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// RestaurantStatesFrom returns all valid next statuses from a given status
func RestaurantStatesFrom(status models.RestaurantStatus) []models.RestaurantStatus {
	var nexts []models.RestaurantStatus
	seen := map[models.RestaurantStatus]bool{}
	for _, t := range validRestaurantTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransitionRestaurant checks if an actor can move a restaurant from one
// status to another. Setting the current status again is a no-op and always
// allowed, so an admin re-approving an approved listing does not fail.
func CanTransitionRestaurant(from, to models.RestaurantStatus, actor Actor) error {
	if from == to {
		return nil
	}
	if restaurantTransitionMap[restaurantTransitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + string(actor) + "'",
	)
}
