package postgres

import (
	"context"
	"database/sql"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type partRequestRepository struct {
	db *sql.DB
}

func NewPartRequestRepository(db *sql.DB) repository.PartRequestRepository {
	return &partRequestRepository{db: db}
}

const partRequestColumns = `id, org_id, garage_name, description, quantity, urgency, max_price_cents, needed_by, requested_date, status`

func (r *partRequestRepository) Create(ctx context.Context, req *domain.PartRequest) error {
	query := `INSERT INTO part_requests (org_id, garage_name, description, quantity, urgency, max_price_cents, needed_by, requested_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.OrgID, req.GarageName, req.Description, req.Quantity, req.Urgency,
		req.MaxPriceCents, req.NeededBy, req.RequestedDate, req.Status,
	).Scan(&req.ID)
}

func (r *partRequestRepository) GetByID(ctx context.Context, id int32) (*domain.PartRequest, error) {
	query := `SELECT ` + partRequestColumns + ` FROM part_requests WHERE id = $1`
	return scanPartRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *partRequestRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.PartRequest, error) {
	query := `SELECT ` + partRequestColumns + ` FROM part_requests WHERE org_id = $1 ORDER BY requested_date DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPartRequests(rows)
}

func (r *partRequestRepository) SearchOpen(ctx context.Context, term string, urgency domain.RequestUrgency) ([]domain.PartRequest, error) {
	query := `SELECT ` + partRequestColumns + ` FROM part_requests
	          WHERE status = $1
	          AND (description ILIKE $2 OR garage_name ILIKE $2)
	          AND ($3 = 'all' OR urgency = $3)
	          ORDER BY requested_date DESC`
	if urgency == "" {
		urgency = domain.RequestUrgencyAll
	}
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusOpen, "%"+term+"%", urgency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPartRequests(rows)
}

func (r *partRequestRepository) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	query := `UPDATE part_requests SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *partRequestRepository) ListOpenNeededBefore(ctx context.Context, cutoff time.Time) ([]domain.PartRequest, error) {
	query := `SELECT ` + partRequestColumns + ` FROM part_requests
	          WHERE status = $1 AND needed_by <= $2 ORDER BY needed_by`
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusOpen, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPartRequests(rows)
}

func scanPartRequest(row *sql.Row) (*domain.PartRequest, error) {
	req := &domain.PartRequest{}
	err := row.Scan(&req.ID, &req.OrgID, &req.GarageName, &req.Description, &req.Quantity,
		&req.Urgency, &req.MaxPriceCents, &req.NeededBy, &req.RequestedDate, &req.Status)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func collectPartRequests(rows *sql.Rows) ([]domain.PartRequest, error) {
	var reqs []domain.PartRequest
	for rows.Next() {
		var req domain.PartRequest
		if err := rows.Scan(&req.ID, &req.OrgID, &req.GarageName, &req.Description, &req.Quantity,
			&req.Urgency, &req.MaxPriceCents, &req.NeededBy, &req.RequestedDate, &req.Status); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
