package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andinaops/attendance-backend-go/internal/domain/attendance"
	"github.com/andinaops/attendance-backend-go/internal/pkg/database"
)

type markRepository struct {
	db *database.DB
}

func NewMarkRepository(db *database.DB) attendance.MarkRepository {
	return &markRepository{db: db}
}

// Create implements attendance.MarkRepository. The marks table is
// append-only; there is no Update or Delete.
func (r *markRepository) Create(ctx context.Context, mark attendance.Mark) (attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_marks (
			id, person_id, site_id, type, observed_at,
			lat, lng, accuracy_m, device_id, evidence_path
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		mark.ID,
		mark.PersonID,
		mark.SiteID,
		string(mark.Type),
		mark.ObservedAt,
		mark.Latitude,
		mark.Longitude,
		mark.AccuracyMeters,
		mark.DeviceID,
		mark.EvidencePath,
	).Scan(&mark.CreatedAt)

	if err != nil {
		return attendance.Mark{}, fmt.Errorf("failed to insert attendance mark: %w", err)
	}

	return mark, nil
}

// ListForReport implements attendance.MarkRepository. A row that fails to
// scan is logged and skipped so one bad row cannot fail a whole range
// query; the affected day simply shows as absent.
func (r *markRepository) ListForReport(ctx context.Context, from, to time.Time, siteID *string, personName *string) ([]attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.person_id, m.site_id, m.type, m.observed_at,
			   m.lat, m.lng, m.accuracy_m, m.device_id, m.evidence_path,
			   m.created_at,
			   p.full_name AS person_name,
			   s.name AS site_name
		FROM attendance_marks m
		LEFT JOIN persons p ON p.id = m.person_id
		LEFT JOIN sites s ON s.id = m.site_id
		WHERE m.observed_at >= $1
		  AND m.observed_at < $2
		  AND ($3::text IS NULL OR m.site_id = $3)
		  AND ($4::text IS NULL OR p.full_name ILIKE '%' || $4 || '%')
	`

	rows, err := q.Query(ctx, query, from, to, siteID, personName)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance marks: %w", err)
	}
	defer rows.Close()

	var marks []attendance.Mark
	for rows.Next() {
		var m attendance.Mark
		var rawType string
		err := rows.Scan(
			&m.ID, &m.PersonID, &m.SiteID, &rawType, &m.ObservedAt,
			&m.Latitude, &m.Longitude, &m.AccuracyMeters, &m.DeviceID, &m.EvidencePath,
			&m.CreatedAt,
			&m.PersonName, &m.SiteName,
		)
		if err != nil {
			slog.Warn("skipping unreadable attendance mark row", "error", err)
			continue
		}
		m.Type = attendance.ParseMarkType(rawType)
		marks = append(marks, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance marks: %w", err)
	}

	return marks, nil
}
