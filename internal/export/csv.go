// Package export emits the CRM tables as CSV with fixed column orders.
// Rows are fully materialized by the caller; this package only formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/order"
)

var customerHeader = []string{"customer_id", "name", "insta", "phone", "city", "ctype", "notes"}

var orderHeader = []string{
	"order_id", "date", "customer_id", "saree_type", "amount",
	"payment_status", "delivery_status", "remarks", "purchase_type", "payment_mode",
}

var followUpHeader = []string{
	"fu_id", "date", "customer_name", "insta", "topic", "next_date", "status", "remarks",
}

func Customers(w io.Writer, rows []customer.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(customerHeader); err != nil {
		return err
	}
	for _, c := range rows {
		rec := []string{c.CustomerID, c.Name, c.Insta, c.Phone, c.City, c.CType, c.Notes}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Orders(w io.Writer, rows []order.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(orderHeader); err != nil {
		return err
	}
	for _, o := range rows {
		rec := []string{
			o.OrderID, o.Date, o.CustomerID, o.SareeType,
			strconv.FormatInt(o.Amount, 10),
			o.PaymentStatus, o.DeliveryStatus, o.Remarks,
			o.PurchaseType, o.PaymentMode,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func FollowUps(w io.Writer, rows []followup.FollowUp) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(followUpHeader); err != nil {
		return err
	}
	for _, f := range rows {
		next := ""
		if f.NextDate != nil {
			next = *f.NextDate
		}
		rec := []string{f.FuID, f.Date, f.CustomerName, f.Insta, f.Topic, next, f.Status, f.Remarks}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Payments shares the order column layout: the payments view is a projection
// over the same rows.
func Payments(w io.Writer, rows []order.Order) error {
	return Orders(w, rows)
}
