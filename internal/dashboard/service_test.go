package dashboard_test

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/dashboard"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/order"
	"vihaavastra.com/sareecrm/internal/testutil"
)

func TestOverviewEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := dashboard.NewService(db)

	o, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// No divide-by-zero on the average
	if o.TotalOrders != 0 || o.AvgOrderValue != 0 {
		t.Errorf("empty database: expected 0 orders / 0 average, got %d/%d",
			o.TotalOrders, o.AvgOrderValue)
	}
	if len(o.MonthlySales) != 0 || len(o.SareeTypes) != 0 || len(o.TopCustomers) != 0 {
		t.Errorf("empty database: expected empty series, got %+v", o)
	}
}

func TestOverviewKPIs(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	custSvc := customer.NewService(db)
	orderSvc := order.NewService(db)
	fuSvc := followup.NewService(db)
	svc := dashboard.NewService(db)

	for _, name := range []string{"Kavya Sharma", "Meera Nair"} {
		if _, err := custSvc.Create(ctx, &customer.Customer{Name: name}); err != nil {
			t.Fatalf("create customer: %v", err)
		}
	}

	orders := []*order.Order{
		{Date: "2025-01-10", CustomerID: "C001", SareeType: "Silk", Amount: 100,
			PaymentStatus: order.StatusPaid, DeliveryStatus: order.DeliveryDelivered,
			PurchaseType: order.PurchaseOnline, PaymentMode: order.ModeUPI},
		{Date: "2025-01-20", CustomerID: "C002", SareeType: "", Amount: 200,
			PaymentStatus: order.StatusPending, DeliveryStatus: order.DeliveryPending,
			PurchaseType: order.PurchaseOnline},
		{Date: "2025-02-01", CustomerID: "C001", SareeType: "Silk", Amount: 51,
			PaymentStatus: order.StatusPaid, DeliveryStatus: order.DeliveryShipped,
			PurchaseType: order.PurchaseOffline, PaymentMode: order.ModeCash},
	}
	for i, o := range orders {
		if _, err := orderSvc.Create(ctx, o); err != nil {
			t.Fatalf("create order %d: %v", i, err)
		}
	}

	if _, err := fuSvc.Create(ctx, &followup.FollowUp{CustomerName: "Kavya Sharma"}); err != nil {
		t.Fatalf("create followup: %v", err)
	}

	o, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if o.TotalCustomers != 2 {
		t.Errorf("expected 2 customers, got %d", o.TotalCustomers)
	}
	if o.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", o.TotalOrders)
	}
	if o.TotalSales != 351 {
		t.Errorf("expected total sales 351, got %d", o.TotalSales)
	}
	// Integer division: 351 / 3
	if o.AvgOrderValue != 117 {
		t.Errorf("expected average 117, got %d", o.AvgOrderValue)
	}
	if o.PendingPayments != 1 || o.PendingDeliveries != 1 || o.PendingFollowUps != 1 {
		t.Errorf("expected 1/1/1 pending counters, got %d/%d/%d",
			o.PendingPayments, o.PendingDeliveries, o.PendingFollowUps)
	}

	wantMonthly := []dashboard.MonthlySales{
		{Month: "2025-01", Amount: 300},
		{Month: "2025-02", Amount: 51},
	}
	if len(o.MonthlySales) != len(wantMonthly) {
		t.Fatalf("expected monthly %v, got %v", wantMonthly, o.MonthlySales)
	}
	for i, w := range wantMonthly {
		if o.MonthlySales[i] != w {
			t.Errorf("monthly[%d]: expected %v, got %v", i, w, o.MonthlySales[i])
		}
	}
}

func TestSareeTypeDistribution(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	orderSvc := order.NewService(db)
	svc := dashboard.NewService(db)

	types := []string{"Silk", "Silk", "Cotton", ""}
	for _, st := range types {
		_, err := orderSvc.Create(ctx, &order.Order{
			Date: "2025-01-10", CustomerID: "C001", SareeType: st, Amount: 100,
			PaymentStatus: order.StatusPaid, DeliveryStatus: order.DeliveryDelivered,
			PurchaseType: order.PurchaseOnline, PaymentMode: order.ModeUPI,
		})
		if err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	o, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// Blank types land in the Unknown bucket; shares are in percent
	want := map[string]struct {
		count int
		share float64
	}{
		"Silk":    {2, 50.0},
		"Cotton":  {1, 25.0},
		"Unknown": {1, 25.0},
	}
	if len(o.SareeTypes) != len(want) {
		t.Fatalf("expected %d buckets, got %+v", len(want), o.SareeTypes)
	}
	for _, tc := range o.SareeTypes {
		w, ok := want[tc.SareeType]
		if !ok {
			t.Errorf("unexpected bucket %q", tc.SareeType)
			continue
		}
		if tc.Count != w.count || tc.Share != w.share {
			t.Errorf("bucket %q: expected %d/%.1f, got %d/%.1f",
				tc.SareeType, w.count, w.share, tc.Count, tc.Share)
		}
	}
	// Largest bucket first
	if o.SareeTypes[0].SareeType != "Silk" {
		t.Errorf("expected Silk first, got %q", o.SareeTypes[0].SareeType)
	}
}

func TestTopCustomers(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	custSvc := customer.NewService(db)
	orderSvc := order.NewService(db)
	svc := dashboard.NewService(db)

	if _, err := custSvc.Create(ctx, &customer.Customer{CustomerID: "C001", Name: "Kavya Sharma"}); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if _, err := custSvc.Create(ctx, &customer.Customer{CustomerID: "C002", Name: "Meera Nair"}); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	// C002 outspends C001; C009 never existed as a customer row.
	// C001 and C003-less orphan C009 tie at 300: customer_id breaks the tie.
	fixtures := []struct {
		cust   string
		amount int64
	}{
		{"C002", 500},
		{"C001", 300},
		{"C009", 300},
	}
	for _, f := range fixtures {
		_, err := orderSvc.Create(ctx, &order.Order{
			Date: "2025-01-10", CustomerID: f.cust, Amount: f.amount,
			PaymentStatus: order.StatusPaid, DeliveryStatus: order.DeliveryDelivered,
			PurchaseType: order.PurchaseOnline, PaymentMode: order.ModeUPI,
		})
		if err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	o, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	want := []dashboard.CustomerSpend{
		{CustomerID: "C002", Name: "Meera Nair", Total: 500},
		{CustomerID: "C001", Name: "Kavya Sharma", Total: 300},
		{CustomerID: "C009", Name: "C009", Total: 300}, // orphan falls back to raw ID
	}
	if len(o.TopCustomers) != len(want) {
		t.Fatalf("expected %v, got %v", want, o.TopCustomers)
	}
	for i, w := range want {
		if o.TopCustomers[i] != w {
			t.Errorf("top[%d]: expected %v, got %v", i, w, o.TopCustomers[i])
		}
	}
}
