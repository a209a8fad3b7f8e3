package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
)

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AddressRepository) GetByIDAndContact(ctx context.Context, id, contactID int64) (*entity.Address, error) {
	a := &entity.Address{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, contact_id, street, city, province, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`, id, contactID)

	if err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province,
		&a.Country, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	a.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = $6
		WHERE id = $7
	`, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]entity.Address, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, contact_id, street, city, province, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id ASC
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]entity.Address, 0)
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province,
			&a.Country, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

var _ repository.AddressRepository = (*AddressRepository)(nil)
