package postgres

import (
	"context"
	"database/sql"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO orgs (name, type, address, phone, email, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	o.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, o.Name, o.Type, o.Address, o.Phone, o.Email, o.CreatedOn).Scan(&o.ID)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, type, address, phone, email, created_on FROM orgs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Type, &o.Address, &o.Phone, &o.Email, &o.CreatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, type, address, phone, email, created_on FROM orgs ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Type, &o.Address, &o.Phone, &o.Email, &o.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) Update(ctx context.Context, o *domain.Organization) error {
	query := `UPDATE orgs SET name = $1, address = $2, phone = $3, email = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, o.Name, o.Address, o.Phone, o.Email, o.ID)
	return err
}
