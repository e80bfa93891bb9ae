package statemachine

import "closetable-api/models"

// Actor identifies who is attempting a transition
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorOwner    Actor = "owner"
	ActorAdmin    Actor = "admin"
)

// ActorFor maps a user role onto the transition actor it acts as.
func ActorFor(role models.Role) Actor {
	switch role {
	case models.RoleAdmin:
		return ActorAdmin
	case models.RoleOwner:
		return ActorOwner
	default:
		return ActorCustomer
	}
}
