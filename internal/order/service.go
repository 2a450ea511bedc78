package order

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
	ErrCustomerRequired = errors.New("order customer is required")
	ErrAmountRequired   = errors.New("order amount must be a positive number")
	ErrBadPaymentStatus = errors.New("payment status must be Paid or Pending")
	ErrBadPaymentMode   = errors.New("payment mode must be UPI or Cash when status is Paid")
	ErrBadDelivery      = errors.New("delivery status must be Pending, Shipped, Delivered or Cancelled")
	ErrBadPurchaseType  = errors.New("purchase type must be Online or Offline")
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

func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.Month = strings.TrimSpace(f.Month)
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.Get(ctx, orderID)
}

// normalize validates the writable fields and enforces the payment coupling:
// a Pending order always has mode Pending, a Paid order needs a real mode.
// The original system only checked this in the browser; here it is an
// invariant of the data layer.
func normalize(o *Order) error {
	o.CustomerID = strings.TrimSpace(o.CustomerID)
	if o.CustomerID == "" {
		return ErrCustomerRequired
	}

	if o.Amount <= 0 {
		return ErrAmountRequired
	}

	if o.Date == "" {
		o.Date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, o.Date); err != nil {
		return fmt.Errorf("%w: order date %q", ErrBadDate, o.Date)
	}

	// Blank enum fields take the same defaults the columns declare.
	switch o.PaymentStatus {
	case StatusPaid:
		if o.PaymentMode != ModeUPI && o.PaymentMode != ModeCash {
			return ErrBadPaymentMode
		}
	case StatusPending, "":
		o.PaymentStatus = StatusPending
		o.PaymentMode = ModePending
	default:
		return ErrBadPaymentStatus
	}

	switch o.DeliveryStatus {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
	case "":
		o.DeliveryStatus = DeliveryPending
	default:
		return ErrBadDelivery
	}

	switch o.PurchaseType {
	case PurchaseOnline, PurchaseOffline:
	case "":
		o.PurchaseType = PurchaseOnline
	default:
		return ErrBadPurchaseType
	}

	o.SareeType = strings.TrimSpace(o.SareeType)
	o.Remarks = strings.TrimSpace(o.Remarks)
	return nil
}

// Create stores a new order. A blank OrderID is allocated as the next
// O-prefixed key; an explicit ID bypasses the allocator.
func (s *Service) Create(ctx context.Context, o *Order) (*Order, error) {
	if err := normalize(o); err != nil {
		return nil, err
	}

	if strings.TrimSpace(o.OrderID) == "" {
		max, err := s.repo.MaxSuffix(ctx)
		if err != nil {
			return nil, err
		}
		o.OrderID = ident.Next(ident.OrderPrefix, max)
	}

	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Create(ctx, tx, o)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, o.OrderID)
}

// Update replaces every field of the row identified by OrderID.
func (s *Service) Update(ctx context.Context, o *Order) error {
	if err := normalize(o); err != nil {
		return err
	}
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Update(ctx, tx, o)
	})
}

func (s *Service) Delete(ctx context.Context, orderID string) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.Delete(ctx, tx, orderID)
	})
}
