// Package service defines the backend-agnostic interface for employee and task lookups.
package service

import "context"

// Service defines the interface for the remote employee/task backend.
// All HTTP calls go through this interface.
// Commands and the report fetcher never talk to the API directly.
type Service interface {
	// User returns the profile for a single user.
	// Fails with a *FetchError (ErrMissingField) if the profile has no username.
	User(ctx context.Context, id UserID) (UserProfile, error)

	// Users returns every user in API order.
	Users(ctx context.Context) ([]UserProfile, error)

	// Tasks returns the raw task items owned by a user, in API order.
	// An empty or blank task list is not an error.
	Tasks(ctx context.Context, id UserID) ([]Task, error)
}
