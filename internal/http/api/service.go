package api

import (
	"context"

	"vihaavastra.com/sareecrm/internal/backup"
	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/dashboard"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/order"
	"vihaavastra.com/sareecrm/internal/payments"
)

type Service struct {
	customers *customer.Service
	orders    *order.Service
	followups *followup.Service
	payments  *payments.Service
	dashboard *dashboard.Service
	backups   *backup.Service
}

func NewService(
	c *customer.Service,
	o *order.Service,
	f *followup.Service,
	p *payments.Service,
	d *dashboard.Service,
	b *backup.Service,
) *Service {
	return &Service{
		customers: c,
		orders:    o,
		followups: f,
		payments:  p,
		dashboard: d,
		backups:   b,
	}
}

// -------------------------
// Customers
// -------------------------

func (s *Service) ListCustomers(ctx context.Context, q string) ([]customer.Customer, error) {
	return s.customers.List(ctx, q)
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	return s.customers.Get(ctx, id)
}

func (s *Service) CreateCustomer(ctx context.Context, req *CustomerRequest) (*customer.Customer, error) {
	c := &customer.Customer{
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Insta:      req.Insta,
		Phone:      req.Phone,
		City:       req.City,
		CType:      req.CType,
		Notes:      req.Notes,
	}
	return s.customers.Create(ctx, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req *CustomerRequest) error {
	c := &customer.Customer{
		CustomerID: id,
		Name:       req.Name,
		Insta:      req.Insta,
		Phone:      req.Phone,
		City:       req.City,
		CType:      req.CType,
		Notes:      req.Notes,
	}
	return s.customers.Update(ctx, c)
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// -------------------------
// Orders
// -------------------------

func (s *Service) ListOrders(ctx context.Context, f order.Filter) ([]order.Order, error) {
	return s.orders.List(ctx, f)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, req *OrderRequest) (*order.Order, error) {
	return s.orders.Create(ctx, orderFromRequest(req.OrderID, req))
}

func (s *Service) UpdateOrder(ctx context.Context, id string, req *OrderRequest) error {
	return s.orders.Update(ctx, orderFromRequest(id, req))
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func orderFromRequest(id string, req *OrderRequest) *order.Order {
	return &order.Order{
		OrderID:        id,
		Date:           req.Date,
		CustomerID:     req.CustomerID,
		SareeType:      req.SareeType,
		Amount:         req.Amount,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
		Remarks:        req.Remarks,
		PurchaseType:   req.PurchaseType,
		PaymentMode:    req.PaymentMode,
	}
}

// -------------------------
// Follow-ups
// -------------------------

func (s *Service) ListFollowUps(ctx context.Context, q string) ([]followup.FollowUp, error) {
	return s.followups.List(ctx, q)
}

func (s *Service) GetFollowUp(ctx context.Context, id string) (*followup.FollowUp, error) {
	return s.followups.Get(ctx, id)
}

func (s *Service) CreateFollowUp(ctx context.Context, req *FollowUpRequest) (*followup.FollowUp, error) {
	return s.followups.Create(ctx, followUpFromRequest(req.FuID, req))
}

func (s *Service) UpdateFollowUp(ctx context.Context, id string, req *FollowUpRequest) error {
	return s.followups.Update(ctx, followUpFromRequest(id, req))
}

func (s *Service) DeleteFollowUp(ctx context.Context, id string) error {
	return s.followups.Delete(ctx, id)
}

func followUpFromRequest(id string, req *FollowUpRequest) *followup.FollowUp {
	f := &followup.FollowUp{
		FuID:         id,
		Date:         req.Date,
		CustomerName: req.CustomerName,
		Insta:        req.Insta,
		Topic:        req.Topic,
		Status:       req.Status,
		Remarks:      req.Remarks,
	}
	if req.NextDate != "" {
		f.NextDate = &req.NextDate
	}
	return f
}

// -------------------------
// Reporting
// -------------------------

func (s *Service) PaymentsView(ctx context.Context, f payments.Filter) (*payments.View, error) {
	return s.payments.View(ctx, f)
}

func (s *Service) DashboardOverview(ctx context.Context) (*dashboard.Overview, error) {
	return s.dashboard.Overview(ctx)
}

// -------------------------
// Backup
// -------------------------

func (s *Service) CreateBackup(ctx context.Context) (*backup.Result, error) {
	return s.backups.Create(ctx)
}
