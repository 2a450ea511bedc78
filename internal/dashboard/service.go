// Package dashboard aggregates the KPI overview from all three tables.
// Everything is read-only and recomputed per request; there is no cache.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"
)

type Service struct {
	db *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// Overview computes the dashboard in one pass.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	o := &Overview{}

	counts := []struct {
		query string
		dest  any
		what  string
	}{
		{countCustomersSQL, &o.TotalCustomers, "total customers"},
		{countOrdersSQL, &o.TotalOrders, "total orders"},
		{totalSalesSQL, &o.TotalSales, "total sales"},
		{countPendingPaymentsSQL, &o.PendingPayments, "pending payments"},
		{countPendingDeliveriesSQL, &o.PendingDeliveries, "pending deliveries"},
		{countPendingFollowUpsSQL, &o.PendingFollowUps, "pending follow-ups"},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("%s: %w", c.what, err)
		}
	}

	// Integer average, 0 when there are no orders yet.
	if o.TotalOrders > 0 {
		o.AvgOrderValue = o.TotalSales / int64(o.TotalOrders)
	}

	o.MonthlySales = []MonthlySales{}
	if err := s.db.SelectContext(ctx, &o.MonthlySales, monthlySalesSQL); err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}

	types := []TypeCount{}
	if err := s.db.SelectContext(ctx, &types, sareeTypeCountsSQL); err != nil {
		return nil, fmt.Errorf("saree type counts: %w", err)
	}
	for i := range types {
		types[i].Share = share(types[i].Count, o.TotalOrders)
	}
	o.SareeTypes = types

	o.TopCustomers = []CustomerSpend{}
	if err := s.db.SelectContext(ctx, &o.TopCustomers, topCustomersSQL); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	return o, nil
}

// share is a percentage rounded to one decimal; 0.0 when the total is 0.
func share(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
