package api

// Requests bind from form-encoded submissions or JSON bodies; echo's Bind
// reads whichever the caller sent.

// -------------------------
// Customer DTOs
// -------------------------

type CustomerRequest struct {
	CustomerID string `json:"customerId" form:"customer_id"`
	Name       string `json:"name" form:"name"`
	Insta      string `json:"insta" form:"insta"`
	Phone      string `json:"phone" form:"phone"`
	City       string `json:"city" form:"city"`
	CType      string `json:"ctype" form:"ctype"`
	Notes      string `json:"notes" form:"notes"`
}

// -------------------------
// Order DTOs
// -------------------------

type OrderRequest struct {
	OrderID        string `json:"orderId" form:"order_id"`
	Date           string `json:"date" form:"date"`
	CustomerID     string `json:"customerId" form:"customer_id"`
	SareeType      string `json:"sareeType" form:"saree_type"`
	Amount         int64  `json:"amount" form:"amount"`
	PaymentStatus  string `json:"paymentStatus" form:"payment_status"`
	DeliveryStatus string `json:"deliveryStatus" form:"delivery_status"`
	Remarks        string `json:"remarks" form:"remarks"`
	PurchaseType   string `json:"purchaseType" form:"purchase_type"`
	PaymentMode    string `json:"paymentMode" form:"payment_mode"`
}

// -------------------------
// Follow-up DTOs
// -------------------------

type FollowUpRequest struct {
	FuID         string `json:"fuId" form:"fu_id"`
	Date         string `json:"date" form:"date"`
	CustomerName string `json:"customerName" form:"customer_name"`
	Insta        string `json:"insta" form:"insta"`
	Topic        string `json:"topic" form:"topic"`
	NextDate     string `json:"nextDate" form:"next_date"` // blank = none
	Status       string `json:"status" form:"status"`
	Remarks      string `json:"remarks" form:"remarks"`
}
