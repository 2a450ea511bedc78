// Package payments derives the payments reporting view from the orders table.
// It is a pure projection: filters, pagination, a payment-mode breakdown,
// a monthly series and two scalar KPIs. No operation here writes.
package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"

	"vihaavastra.com/sareecrm/internal/order"
)

type Service struct {
	db *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db}
}

func orderBy(sort string) string {
	switch sort {
	case SortAmount:
		return orderByAmountSQL
	case SortStatus:
		return orderByStatusSQL
	default:
		return orderByDefaultSQL
	}
}

func conditions(f Filter) (conds []string, args []any) {
	if f.Month != "" {
		conds = append(conds, monthCondSQL)
		args = append(args, f.Month)
	}
	if f.Status != "" {
		conds = append(conds, statusCondSQL)
		args = append(args, f.Status)
	}
	if f.Mode != "" {
		conds = append(conds, modeCondSQL)
		args = append(args, f.Mode)
	}
	return conds, args
}

func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// View assembles the whole payments page in one call.
func (s *Service) View(ctx context.Context, f Filter) (*View, error) {
	f.Month = strings.TrimSpace(f.Month)
	f.Status = strings.TrimSpace(f.Status)
	f.Mode = strings.TrimSpace(f.Mode)
	if f.Page < 1 {
		f.Page = 1
	}

	conds, args := conditions(f)

	var total int
	if err := s.db.GetContext(ctx, &total, countPaymentsBaseSQL+where(conds), args...); err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	// Past-the-end pages legitimately return an empty slice, not an error.
	query := listPaymentsBaseSQL + where(conds) + orderBy(f.Sort) +
		" LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), PageSize, (f.Page-1)*PageSize)

	rows := []order.Order{}
	if err := s.db.SelectContext(ctx, &rows, query, pageArgs...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	modes, err := s.modeBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	// The monthly graph tracks the caller's status filter, defaulting to Paid.
	graphStatus := f.Status
	if graphStatus == "" {
		graphStatus = order.StatusPaid
	}
	monthly, err := s.monthly(ctx, graphStatus)
	if err != nil {
		return nil, err
	}

	revenue, err := s.sumByStatus(ctx, order.StatusPaid, f.Month)
	if err != nil {
		return nil, err
	}
	pending, err := s.sumByStatus(ctx, order.StatusPending, f.Month)
	if err != nil {
		return nil, err
	}

	return &View{
		Rows:         rows,
		Total:        total,
		Page:         f.Page,
		Pages:        (total + PageSize - 1) / PageSize,
		Modes:        modes,
		Monthly:      monthly,
		GraphStatus:  graphStatus,
		TotalRevenue: revenue,
		TotalPending: pending,
	}, nil
}

// modeBreakdown buckets every order's amount into UPI, Cash or Pending and
// expresses each bucket as a share of the grand total. Modes outside the
// three known values fold into Pending, matching how NULLs are stored.
func (s *Service) modeBreakdown(ctx context.Context) ([]ModeShare, error) {
	var raw []struct {
		Mode   string `db:"mode"`
		Amount int64  `db:"amount"`
	}
	if err := s.db.SelectContext(ctx, &raw, modeBreakdownSQL); err != nil {
		return nil, fmt.Errorf("mode breakdown: %w", err)
	}

	sums := map[string]int64{}
	var total int64
	for _, r := range raw {
		mode := r.Mode
		if mode != order.ModeUPI && mode != order.ModeCash {
			mode = order.ModePending
		}
		sums[mode] += r.Amount
		total += r.Amount
	}

	out := make([]ModeShare, 0, 3)
	for _, mode := range []string{order.ModeUPI, order.ModeCash, order.ModePending} {
		out = append(out, ModeShare{
			Mode:   mode,
			Amount: sums[mode],
			Share:  share(sums[mode], total),
		})
	}
	return out, nil
}

// share is a percentage rounded to one decimal; 0.0 when the total is 0.
func share(part, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func (s *Service) monthly(ctx context.Context, status string) ([]MonthlyTotal, error) {
	out := []MonthlyTotal{}
	if err := s.db.SelectContext(ctx, &out, monthlyByStatusSQL, status); err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	return out, nil
}

func (s *Service) sumByStatus(ctx context.Context, status, month string) (int64, error) {
	var sum int64
	var err error
	if month != "" {
		err = s.db.GetContext(ctx, &sum, sumByStatusMonthSQL, status, month)
	} else {
		err = s.db.GetContext(ctx, &sum, sumByStatusSQL, status)
	}
	if err != nil {
		return 0, fmt.Errorf("sum %s orders: %w", strings.ToLower(status), err)
	}
	return sum, nil
}
