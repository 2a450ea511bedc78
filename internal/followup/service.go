package followup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"vihaavastra.com/sareecrm/internal/ident"
)

// Validation errors surfaced to the caller as rejected writes.
var (
	ErrCustomerRequired = errors.New("follow-up customer name is required")
	ErrBadDate          = errors.New("date must be YYYY-MM-DD")
)

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

// List returns all follow-ups, filtered by a case-insensitive substring match
// over customer name, insta and topic when q is non-empty.
func (s *Service) List(ctx context.Context, q string) ([]FollowUp, error) {
	if q = strings.TrimSpace(q); q != "" {
		return s.repo.Search(ctx, q)
	}
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, fuID string) (*FollowUp, error) {
	return s.repo.Get(ctx, fuID)
}

func normalize(f *FollowUp) error {
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	if f.CustomerName == "" {
		return ErrCustomerRequired
	}

	if f.Date == "" {
		f.Date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return fmt.Errorf("%w: follow-up date %q", ErrBadDate, f.Date)
	}

	if f.NextDate != nil {
		if nd := strings.TrimSpace(*f.NextDate); nd == "" {
			f.NextDate = nil
		} else if _, err := time.Parse(DateLayout, nd); err != nil {
			return fmt.Errorf("%w: next date %q", ErrBadDate, nd)
		} else {
			f.NextDate = &nd
		}
	}

	if f.Status != StatusDone {
		f.Status = StatusPending
	}

	f.Topic = strings.TrimSpace(f.Topic)
	f.Remarks = strings.TrimSpace(f.Remarks)
	return nil
}

// Create stores a new follow-up. A blank FuID is allocated as the next
// F-prefixed key; an explicit ID bypasses the allocator.
func (s *Service) Create(ctx context.Context, f *FollowUp) (*FollowUp, error) {
	if err := normalize(f); err != nil {
		return nil, err
	}

	if strings.TrimSpace(f.FuID) == "" {
		max, err := s.repo.MaxSuffix(ctx)
		if err != nil {
			return nil, err
		}
		f.FuID = ident.Next(ident.FollowUpPrefix, max)
	}

	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Create(ctx, tx, f)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, f.FuID)
}

// Update replaces every field of the row identified by FuID.
func (s *Service) Update(ctx context.Context, f *FollowUp) error {
	if err := normalize(f); err != nil {
		return err
	}
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Update(ctx, tx, f)
	})
}

func (s *Service) Delete(ctx context.Context, fuID string) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Delete(ctx, tx, fuID)
	})
}
