package order

// Payment status values.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
)

// Payment modes. A pending payment has no real mode yet, so it is parked on
// ModePending until the order is marked Paid.
const (
	ModeUPI     = "UPI"
	ModeCash    = "Cash"
	ModePending = "Pending"
)

// Delivery status values.
const (
	DeliveryPending   = "Pending"
	DeliveryShipped   = "Shipped"
	DeliveryDelivered = "Delivered"
	DeliveryCancelled = "Cancelled"
)

// Purchase types.
const (
	PurchaseOnline  = "Online"
	PurchaseOffline = "Offline"
)

// Sort modes accepted by List.
const (
	SortPending = "pending" // unpaid orders first, then newest
	SortDate    = "date"
	SortAmount  = "amount"
)

// DateLayout is the storage format for order dates.
const DateLayout = "2006-01-02"

type Order struct {
	ID             int64  `db:"id" json:"-"`
	OrderID        string `db:"order_id" json:"orderId"`
	Date           string `db:"order_date" json:"date"`
	CustomerID     string `db:"customer_id" json:"customerId"`
	SareeType      string `db:"saree_type" json:"sareeType"`
	Amount         int64  `db:"amount" json:"amount"`
	PaymentStatus  string `db:"payment_status" json:"paymentStatus"`
	DeliveryStatus string `db:"delivery_status" json:"deliveryStatus"`
	Remarks        string `db:"remarks" json:"remarks"`
	PurchaseType   string `db:"purchase_type" json:"purchaseType"`
	PaymentMode    string `db:"payment_mode" json:"paymentMode"`

	// Resolved at read time from the soft customer reference; "-" when the
	// referent is missing. Never written back.
	CustomerName string `db:"customer_name" json:"customerName"`
}
