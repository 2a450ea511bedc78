package customer

// Customer types used by the dashboard and forms.
const (
	TypeNew     = "New"
	TypeRegular = "Regular"
	TypeVIP     = "VIP"
)

type Customer struct {
	ID         int64  `db:"id" json:"-"`
	CustomerID string `db:"customer_id" json:"customerId"`
	Name       string `db:"name" json:"name"`
	Insta      string `db:"insta" json:"insta"`
	Phone      string `db:"phone" json:"phone"`
	City       string `db:"city" json:"city"`
	CType      string `db:"ctype" json:"ctype"`
	Notes      string `db:"notes" json:"notes"`
}
