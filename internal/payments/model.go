package payments

import "vihaavastra.com/sareecrm/internal/order"

// PageSize is the fixed number of rows per page.
const PageSize = 50

// Sort modes accepted by the payments view.
const (
	SortDate   = "date"
	SortAmount = "amount"
	SortStatus = "status"
)

// Filter narrows the projection. Zero values mean "no constraint".
type Filter struct {
	Month  string // exact YYYY-MM match on the order date
	Status string // Paid or Pending
	Mode   string // UPI, Cash or Pending
	Sort   string // SortDate (default), SortAmount, SortStatus
	Page   int    // 1-based; clamped up to 1, never clamped down
}

// ModeShare is one bucket of the payment-mode breakdown.
type ModeShare struct {
	Mode   string  `json:"mode"`
	Amount int64   `json:"amount"`
	Share  float64 `json:"share"` // percent of the all-orders total, one decimal
}

// MonthlyTotal is one point of the month-bucketed series.
type MonthlyTotal struct {
	Month  string `db:"month" json:"month"`
	Amount int64  `db:"amount" json:"amount"`
}

// View is the full payments page payload. It is derived entirely from the
// orders table; nothing here ever writes.
type View struct {
	Rows  []order.Order `json:"rows"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`

	Modes       []ModeShare    `json:"modes"`
	Monthly     []MonthlyTotal `json:"monthly"`
	GraphStatus string         `json:"graphStatus"`

	TotalRevenue int64 `json:"totalRevenue"`
	TotalPending int64 `json:"totalPending"`
}
