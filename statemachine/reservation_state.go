package statemachine

import (
	"errors"

	"closetable-api/models"
)

// ReservationTransition defines a valid reservation status change and who
// can perform it
type ReservationTransition struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor Actor
}

// A reservation starts confirmed. The customer can cancel it; the
// restaurant's owner or an admin can move it to any other status:
// reject it, mark it canceled on the customer's behalf, or reinstate
// a canceled or rejected one.
var validReservationTransitions = []ReservationTransition{
	{From: models.ReservationConfirmed, To: models.ReservationCanceled, Actor: ActorCustomer},
	{From: models.ReservationConfirmed, To: models.ReservationCanceled, Actor: ActorOwner},
	{From: models.ReservationConfirmed, To: models.ReservationCanceled, Actor: ActorAdmin},
	{From: models.ReservationConfirmed, To: models.ReservationRejected, Actor: ActorOwner},
	{From: models.ReservationConfirmed, To: models.ReservationRejected, Actor: ActorAdmin},
	{From: models.ReservationCanceled, To: models.ReservationConfirmed, Actor: ActorOwner},
	{From: models.ReservationCanceled, To: models.ReservationConfirmed, Actor: ActorAdmin},
	{From: models.ReservationRejected, To: models.ReservationConfirmed, Actor: ActorOwner},
	{From: models.ReservationRejected, To: models.ReservationConfirmed, Actor: ActorAdmin},
	{From: models.ReservationCanceled, To: models.ReservationRejected, Actor: ActorOwner},
	{From: models.ReservationCanceled, To: models.ReservationRejected, Actor: ActorAdmin},
	{From: models.ReservationRejected, To: models.ReservationCanceled, Actor: ActorOwner},
	{From: models.ReservationRejected, To: models.ReservationCanceled, Actor: ActorAdmin},
}

type reservationTransitionKey struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor Actor
}

var reservationTransitionMap = func() map[reservationTransitionKey]bool {
	m := make(map[reservationTransitionKey]bool)
	for _, t := range validReservationTransitions {
		m[reservationTransitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransitionReservation checks if an actor can move a reservation from
// one status to another.
func CanTransitionReservation(from, to models.ReservationStatus, actor Actor) error {
	if from == to {
		return nil
	}
	if reservationTransitionMap[reservationTransitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + string(actor) + "'",
	)
}

// CancelStatusFor resolves the delete-shaped cancel operation: acting as
// the customer the reservation is canceled, acting as the restaurant's
// owner or an admin it is rejected. Never a physical delete.
func CancelStatusFor(actor Actor) models.ReservationStatus {
	if actor == ActorCustomer {
		return models.ReservationCanceled
	}
	return models.ReservationRejected
}
