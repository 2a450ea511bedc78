package followup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no follow-up matches the requested business key.
var ErrNotFound = errors.New("follow-up not found")

type Repository interface {
	GetAll(ctx context.Context) ([]FollowUp, error)
	Search(ctx context.Context, q string) ([]FollowUp, error)
	Get(ctx context.Context, fuID string) (*FollowUp, error)
	Create(ctx context.Context, tx *sqlx.Tx, f *FollowUp) error
	Update(ctx context.Context, tx *sqlx.Tx, f *FollowUp) error
	Delete(ctx context.Context, tx *sqlx.Tx, fuID string) error
	MaxSuffix(ctx context.Context) (int, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetAll(ctx context.Context) ([]FollowUp, error) {
	var out []FollowUp
	err := r.db.SelectContext(ctx, &out, getAllFollowUpsSQL)
	if err != nil {
		return nil, fmt.Errorf("get all follow-ups: %w", err)
	}
	return out, nil
}

func (r *repo) Search(ctx context.Context, q string) ([]FollowUp, error) {
	like := "%" + q + "%"
	var out []FollowUp
	err := r.db.SelectContext(ctx, &out, searchFollowUpsSQL, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("search follow-ups: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, fuID string) (*FollowUp, error) {
	var f FollowUp
	err := r.db.GetContext(ctx, &f, getFollowUpSQL, fuID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w (%s)", ErrNotFound, fuID)
	}
	if err != nil {
		return nil, fmt.Errorf("get follow-up: %w", err)
	}
	return &f, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, f *FollowUp) error {
	_, err := tx.ExecContext(ctx, createFollowUpSQL,
		f.FuID,
		f.Date,
		f.CustomerName,
		f.Insta,
		f.Topic,
		f.NextDate,
		f.Status,
		f.Remarks,
	)
	if err != nil {
		return fmt.Errorf("create follow-up: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, f *FollowUp) error {
	res, err := tx.ExecContext(ctx, updateFollowUpSQL,
		f.Date,
		f.CustomerName,
		f.Insta,
		f.Topic,
		f.NextDate,
		f.Status,
		f.Remarks,
		f.FuID,
	)
	if err != nil {
		return fmt.Errorf("update follow-up: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, f.FuID)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, tx *sqlx.Tx, fuID string) error {
	res, err := tx.ExecContext(ctx, deleteFollowUpSQL, fuID)
	if err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, fuID)
	}
	return nil
}

func (r *repo) MaxSuffix(ctx context.Context) (int, error) {
	var max int
	err := r.db.GetContext(ctx, &max, maxFollowUpSuffixSQL)
	if err != nil {
		return 0, fmt.Errorf("max follow-up suffix: %w", err)
	}
	return max, nil
}
