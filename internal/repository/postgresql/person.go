package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andinaops/attendance-backend-go/internal/domain/person"
	"github.com/andinaops/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type personRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepository{db: db}
}

// GetByID implements person.PersonRepository.
func (r *personRepository) GetByID(ctx context.Context, id string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, active, assigned_site_id, created_at, updated_at
		FROM persons
		WHERE id = $1
	`

	var p person.Person
	var rawRole string
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FullName, &rawRole, &p.Active, &p.AssignedSiteID,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person by ID: %w", err)
	}

	// The HR system stores free-form role labels; normalize at the boundary.
	p.Role = person.ParseRole(rawRole)

	return p, nil
}
