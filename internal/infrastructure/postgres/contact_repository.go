package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (user_id, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.FirstName, c.LastName, c.Email, c.Phone)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByIDAndUser looks the contact up by id and owner in a single
// scoped query, so a contact owned by another user scans as no rows.
func (r *ContactRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*entity.Contact, error) {
	c := &entity.Contact{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6
	`, c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the contact row; the addresses FK is declared ON
// DELETE CASCADE so the contact's addresses go with it.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Search runs the filter as two statements over the same WHERE clause:
// a count across the full match set, then the requested page ordered
// by ascending id. Keeping the stages separate keeps the total correct
// independent of the page size.
func (r *ContactRepository) Search(ctx context.Context, userID int64, f repository.SearchFilter, limit, offset int) ([]entity.Contact, int64, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		where = append(where, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, "%"+f.Phone+"%")
		where = append(where, fmt.Sprintf("phone LIKE $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM contacts WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
		WHERE %s
		ORDER BY id ASC
		LIMIT %d OFFSET %d
	`, cond, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts := make([]entity.Contact, 0, limit)
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName,
			&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
