package services

import "errors"

// Errors returned by the services. Handlers map lookups to 404, a
// missing exit to 409 and the rest to 400.
var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrMobNotFound  = errors.New("mob not found")
	ErrNoExit       = errors.New("no exit in that direction")

	ErrUnknownAction = errors.New("unknown view action")
)
