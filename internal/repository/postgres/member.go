package postgres

import (
	"context"
	"database/sql"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/repository"

	"github.com/lib/pq"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, org_id, name, username, email, phone, role, permissions, status, password_hash, created_on, last_active`

func (r *memberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (org_id, name, username, email, phone, role, permissions, status, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	m.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query,
		m.OrgID, m.Name, m.Username, m.Email, m.Phone, m.Role,
		pq.Array(permissionStrings(m.Permissions)), m.Status, m.PasswordHash, m.CreatedOn,
	).Scan(&m.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`
	return r.scanMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE email = $1`
	return r.scanMember(r.db.QueryRowContext(ctx, query, email))
}

func (r *memberRepository) GetByUsername(ctx context.Context, orgID int32, username string) (*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE org_id = $1 AND username = $2`
	return r.scanMember(r.db.QueryRowContext(ctx, query, orgID, username))
}

func (r *memberRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		var perms []string
		if err := rows.Scan(&m.ID, &m.OrgID, &m.Name, &m.Username, &m.Email, &m.Phone, &m.Role,
			pq.Array(&perms), &m.Status, &m.PasswordHash, &m.CreatedOn, &m.LastActive); err != nil {
			return nil, err
		}
		m.Permissions = toPermissions(perms)
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `UPDATE team_members SET name = $1, username = $2, email = $3, phone = $4, role = $5,
	          permissions = $6, status = $7, password_hash = $8 WHERE id = $9`
	_, err := r.db.ExecContext(ctx, query,
		m.Name, m.Username, m.Email, m.Phone, m.Role,
		pq.Array(permissionStrings(m.Permissions)), m.Status, m.PasswordHash, m.ID)
	return err
}

func (r *memberRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM team_members WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *memberRepository) TouchLastActive(ctx context.Context, id int32, at time.Time) error {
	query := `UPDATE team_members SET last_active = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, at, id)
	return err
}

func (r *memberRepository) scanMember(row *sql.Row) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	var perms []string
	err := row.Scan(&m.ID, &m.OrgID, &m.Name, &m.Username, &m.Email, &m.Phone, &m.Role,
		pq.Array(&perms), &m.Status, &m.PasswordHash, &m.CreatedOn, &m.LastActive)
	if err != nil {
		return nil, err
	}
	m.Permissions = toPermissions(perms)
	return m, nil
}

func permissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func toPermissions(values []string) []domain.Permission {
	out := make([]domain.Permission, len(values))
	for i, v := range values {
		out[i] = domain.Permission(v)
	}
	return out
}
