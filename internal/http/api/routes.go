package api

import "github.com/labstack/echo/v4"

func RegisterRoutes(g *echo.Group, h *Handler) {

	// Customers
	g.GET("/customers", h.ListCustomers)
	g.GET("/customers/:id", h.GetCustomer)
	g.POST("/customers", h.CreateCustomer)
	g.PUT("/customers/:id", h.UpdateCustomer)
	g.DELETE("/customers/:id", h.DeleteCustomer)

	// Orders
	g.GET("/orders", h.ListOrders)
	g.GET("/orders/:id", h.GetOrder)
	g.POST("/orders", h.CreateOrder)
	g.PUT("/orders/:id", h.UpdateOrder)
	g.DELETE("/orders/:id", h.DeleteOrder)

	// Follow-ups
	g.GET("/followups", h.ListFollowUps)
	g.GET("/followups/:id", h.GetFollowUp)
	g.POST("/followups", h.CreateFollowUp)
	g.PUT("/followups/:id", h.UpdateFollowUp)
	g.DELETE("/followups/:id", h.DeleteFollowUp)

	// Reporting (read-only projections)
	g.GET("/payments", h.GetPayments)
	g.GET("/dashboard", h.GetDashboard)

	// CSV exports
	g.GET("/export/customers.csv", h.ExportCustomersCSV)
	g.GET("/export/orders.csv", h.ExportOrdersCSV)
	g.GET("/export/followups.csv", h.ExportFollowUpsCSV)
	g.GET("/export/payments.csv", h.ExportPaymentsCSV)

	// Backup
	g.POST("/backup", h.CreateBackup)
}
