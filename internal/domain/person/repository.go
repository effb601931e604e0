package person

import "context"

// PersonRepository reads collaborator-owned person records. This core
// never writes them.
type PersonRepository interface {
	// GetByID retrieves a person by ID; returns ErrPersonNotFound when absent.
	GetByID(ctx context.Context, id string) (Person, error)
}
