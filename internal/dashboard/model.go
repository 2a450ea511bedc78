package dashboard

// Overview is the full dashboard payload, recomputed from the live tables on
// every request.
type Overview struct {
	TotalCustomers    int   `json:"totalCustomers"`
	TotalOrders       int   `json:"totalOrders"`
	TotalSales        int64 `json:"totalSales"`
	AvgOrderValue     int64 `json:"avgOrderValue"`
	PendingPayments   int   `json:"pendingPayments"`
	PendingDeliveries int   `json:"pendingDeliveries"`
	PendingFollowUps  int   `json:"pendingFollowUps"`

	MonthlySales []MonthlySales  `json:"monthlySales"`
	SareeTypes   []TypeCount     `json:"sareeTypes"`
	TopCustomers []CustomerSpend `json:"topCustomers"`
}

// MonthlySales is one point of the chronological sales series.
type MonthlySales struct {
	Month  string `db:"month" json:"month"`
	Amount int64  `db:"amount" json:"amount"`
}

// TypeCount is one bucket of the saree-type distribution. Blank types are
// reported under the "Unknown" label.
type TypeCount struct {
	SareeType string  `db:"saree_type" json:"sareeType"`
	Count     int     `db:"count" json:"count"`
	Share     float64 `json:"share"` // percent of all orders, one decimal
}

// CustomerSpend is one row of the top-customers ranking. Name falls back to
// the raw customer_id when the soft reference does not resolve.
type CustomerSpend struct {
	CustomerID string `db:"customer_id" json:"customerId"`
	Name       string `db:"name" json:"name"`
	Total      int64  `db:"total" json:"total"`
}
