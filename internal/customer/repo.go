package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no customer matches the requested business key.
var ErrNotFound = errors.New("customer not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Customer, error)
	Search(ctx context.Context, q string) ([]Customer, error)
	Get(ctx context.Context, customerID string) (*Customer, error)
	Create(ctx context.Context, tx *sqlx.Tx, c *Customer) error
	Update(ctx context.Context, tx *sqlx.Tx, c *Customer) error
	Delete(ctx context.Context, tx *sqlx.Tx, customerID string) error
	MaxSuffix(ctx context.Context) (int, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]Customer, error) {
	var out []Customer
	err := r.db.SelectContext(ctx, &out, getAllCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("get all customers: %w", err)
	}
	return out, nil
}

func (r *repo) Search(ctx context.Context, q string) ([]Customer, error) {
	like := "%" + q + "%"
	var out []Customer
	err := r.db.SelectContext(ctx, &out, searchCustomersSQL, like, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, customerID string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, getCustomerSQL, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w (%s)", ErrNotFound, customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, c *Customer) error {
	_, err := tx.ExecContext(ctx, createCustomerSQL,
		c.CustomerID,
		c.Name,
		c.Insta,
		c.Phone,
		c.City,
		c.CType,
		c.Notes,
	)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, c *Customer) error {
	res, err := tx.ExecContext(ctx, updateCustomerSQL,
		c.Name,
		c.Insta,
		c.Phone,
		c.City,
		c.CType,
		c.Notes,
		c.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, c.CustomerID)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, tx *sqlx.Tx, customerID string) error {
	res, err := tx.ExecContext(ctx, deleteCustomerSQL, customerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, customerID)
	}
	return nil
}

func (r *repo) MaxSuffix(ctx context.Context) (int, error) {
	var max int
	err := r.db.GetContext(ctx, &max, maxCustomerSuffixSQL)
	if err != nil {
		return 0, fmt.Errorf("max customer suffix: %w", err)
	}
	return max, nil
}
