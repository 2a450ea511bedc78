package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"vihaavastra.com/sareecrm/internal/ident"
)

// ErrNameRequired is returned when a create or update carries no name.
var ErrNameRequired = errors.New("customer name is required")

type Service struct {
	repo Repository
	db   *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: New(db),
	}
}

func (s *Service) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// List returns all customers, filtered by a case-insensitive substring match
// over name, insta, phone and city when q is non-empty.
func (s *Service) List(ctx context.Context, q string) ([]Customer, error) {
	if q = strings.TrimSpace(q); q != "" {
		return s.repo.Search(ctx, q)
	}
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, customerID string) (*Customer, error) {
	return s.repo.Get(ctx, customerID)
}

// Create stores a new customer. A blank CustomerID is allocated as the next
// C-prefixed key; an explicit ID bypasses the allocator.
func (s *Service) Create(ctx context.Context, c *Customer) (*Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ErrNameRequired
	}

	if strings.TrimSpace(c.CustomerID) == "" {
		max, err := s.repo.MaxSuffix(ctx)
		if err != nil {
			return nil, err
		}
		c.CustomerID = ident.Next(ident.CustomerPrefix, max)
	}

	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Create(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, c.CustomerID)
}

// Update replaces every field of the row identified by CustomerID.
func (s *Service) Update(ctx context.Context, c *Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Update(ctx, tx, c)
	})
}

func (s *Service) Delete(ctx context.Context, customerID string) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Delete(ctx, tx, customerID)
	})
}
