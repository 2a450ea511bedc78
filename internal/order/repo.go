package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no order matches the requested business key.
var ErrNotFound = errors.New("order not found")

// Filter narrows a listing. Zero values mean "no constraint".
type Filter struct {
	Query string // substring over order_id, saree_type, customer_id
	Month string // exact YYYY-MM match on the order date
	Sort  string // SortPending (default), SortDate, SortAmount
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]Order, error)
	Get(ctx context.Context, orderID string) (*Order, error)
	Create(ctx context.Context, tx *sqlx.Tx, o *Order) error
	Update(ctx context.Context, tx *sqlx.Tx, o *Order) error
	Delete(ctx context.Context, tx *sqlx.Tx, orderID string) error
	MaxSuffix(ctx context.Context) (int, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

// orderBy maps a sort mode to its ORDER BY clause. Unknown values degrade to
// the default pending-first ordering instead of failing the request.
func orderBy(sort string) string {
	switch sort {
	case SortDate:
		return orderByDateSQL
	case SortAmount:
		return orderByAmountSQL
	default:
		return orderByPendingSQL
	}
}

func (r *repo) List(ctx context.Context, f Filter) ([]Order, error) {
	var conds []string
	var args []any

	if f.Query != "" {
		like := "%" + f.Query + "%"
		conds = append(conds, searchOrdersCondSQL)
		args = append(args, like, like, like)
	}
	if f.Month != "" {
		conds = append(conds, monthCondSQL)
		args = append(args, f.Month)
	}

	query := listOrdersBaseSQL
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += orderBy(f.Sort)

	var out []Order
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.GetContext(ctx, &o, getOrderSQL, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w (%s)", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, o *Order) error {
	_, err := tx.ExecContext(ctx, createOrderSQL,
		o.OrderID,
		o.Date,
		o.CustomerID,
		o.SareeType,
		o.Amount,
		o.PaymentStatus,
		o.DeliveryStatus,
		o.Remarks,
		o.PurchaseType,
		o.PaymentMode,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, o *Order) error {
	res, err := tx.ExecContext(ctx, updateOrderSQL,
		o.Date,
		o.CustomerID,
		o.SareeType,
		o.Amount,
		o.PaymentStatus,
		o.DeliveryStatus,
		o.Remarks,
		o.PurchaseType,
		o.PaymentMode,
		o.OrderID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, o.OrderID)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, tx *sqlx.Tx, orderID string) error {
	res, err := tx.ExecContext(ctx, deleteOrderSQL, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w (%s)", ErrNotFound, orderID)
	}
	return nil
}

func (r *repo) MaxSuffix(ctx context.Context) (int, error) {
	var max int
	err := r.db.GetContext(ctx, &max, maxOrderSuffixSQL)
	if err != nil {
		return 0, fmt.Errorf("max order suffix: %w", err)
	}
	return max, nil
}
