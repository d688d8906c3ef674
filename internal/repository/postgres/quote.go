package postgres

import (
	"context"
	"database/sql"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, request_id, supplier_id, supplier_name, part_name, part_number, quantity,
	unit_price_cents, total_price_cents, availability, delivery_time, warranty, notes, status, valid_until, created_at`

func (r *quoteRepository) Create(ctx context.Context, q *domain.PartQuote) error {
	query := `INSERT INTO part_quotes (request_id, supplier_id, supplier_name, part_name, part_number, quantity,
	              unit_price_cents, total_price_cents, availability, delivery_time, warranty, notes, status, valid_until, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		q.RequestID, q.SupplierID, q.SupplierName, q.PartName, q.PartNumber, q.Quantity,
		q.UnitPriceCents, q.TotalPriceCents, q.Availability, q.DeliveryTime, q.Warranty,
		q.Notes, q.Status, q.ValidUntil, q.CreatedAt,
	).Scan(&q.ID)
}

func (r *quoteRepository) GetByID(ctx context.Context, id int32) (*domain.PartQuote, error) {
	q := &domain.PartQuote{}
	query := `SELECT ` + quoteColumns + ` FROM part_quotes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.RequestID, &q.SupplierID, &q.SupplierName, &q.PartName, &q.PartNumber, &q.Quantity,
		&q.UnitPriceCents, &q.TotalPriceCents, &q.Availability, &q.DeliveryTime, &q.Warranty,
		&q.Notes, &q.Status, &q.ValidUntil, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quoteRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.PartQuote, error) {
	query := `SELECT ` + quoteColumns + ` FROM part_quotes WHERE request_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, requestID)
}

func (r *quoteRepository) ListBySupplier(ctx context.Context, supplierID int32) ([]domain.PartQuote, error) {
	query := `SELECT ` + quoteColumns + ` FROM part_quotes WHERE supplier_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, supplierID)
}

func (r *quoteRepository) list(ctx context.Context, query string, args ...any) ([]domain.PartQuote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.PartQuote
	for rows.Next() {
		var q domain.PartQuote
		if err := rows.Scan(
			&q.ID, &q.RequestID, &q.SupplierID, &q.SupplierName, &q.PartName, &q.PartNumber, &q.Quantity,
			&q.UnitPriceCents, &q.TotalPriceCents, &q.Availability, &q.DeliveryTime, &q.Warranty,
			&q.Notes, &q.Status, &q.ValidUntil, &q.CreatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error {
	query := `UPDATE part_quotes SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *quoteRepository) RejectPendingForRequest(ctx context.Context, requestID, keepID int32) error {
	query := `UPDATE part_quotes SET status = $1 WHERE request_id = $2 AND id <> $3 AND status = $4`
	_, err := r.db.ExecContext(ctx, query, domain.QuoteStatusRejected, requestID, keepID, domain.QuoteStatusPending)
	return err
}

func (r *quoteRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE part_quotes SET status = $1 WHERE status = $2 AND valid_until < $3`
	res, err := r.db.ExecContext(ctx, query, domain.QuoteStatusExpired, domain.QuoteStatusPending, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
