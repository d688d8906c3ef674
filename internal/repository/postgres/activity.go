package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, e *domain.ActivityLogEntry) error {
	query := `INSERT INTO activity_log (org_id, user_id, user_name, action, description, details, timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		e.OrgID, e.UserID, e.UserName, e.Action, e.Description, e.Details, e.Timestamp,
	).Scan(&e.ID)
}

func (r *activityRepository) Search(ctx context.Context, orgID int32, filter domain.ActivityFilter, now time.Time) ([]domain.ActivityLogEntry, error) {
	query := `SELECT id, org_id, user_id, user_name, action, description, details, timestamp
	          FROM activity_log WHERE org_id = $1`
	args := []any{orgID}

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Term != "" {
		args = append(args, "%"+filter.Term+"%")
		query += fmt.Sprintf(" AND (description ILIKE $%d OR user_name ILIKE $%d)", len(args), len(args))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if start, ok := domain.ActivityWindowStart(filter.Window, now); ok {
		args = append(args, start)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	query += " ORDER BY timestamp DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLogEntry
	for rows.Next() {
		var e domain.ActivityLogEntry
		if err := rows.Scan(&e.ID, &e.OrgID, &e.UserID, &e.UserName, &e.Action,
			&e.Description, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
