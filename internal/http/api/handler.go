package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/export"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/order"
	"vihaavastra.com/sareecrm/internal/payments"
	"vihaavastra.com/sareecrm/internal/sqlite"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// validationErrs are writes rejected before touching storage; they map to 400.
var validationErrs = []error{
	customer.ErrNameRequired,
	order.ErrCustomerRequired,
	order.ErrAmountRequired,
	order.ErrBadPaymentStatus,
	order.ErrBadPaymentMode,
	order.ErrBadDelivery,
	order.ErrBadPurchaseType,
	order.ErrBadDate,
	followup.ErrCustomerRequired,
	followup.ErrBadDate,
}

// fail translates a service error into the response contract: 400 for
// rejected writes, 404 for unknown business keys, 409 for duplicate keys,
// otherwise a generic 500 (the root cause is logged by echo, never exposed).
func fail(c echo.Context, err error) error {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	if errors.Is(err, customer.ErrNotFound) ||
		errors.Is(err, order.ErrNotFound) ||
		errors.Is(err, followup.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if sqlite.IsUniqueConstraintError(err) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "that ID already exists"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// Customers

func (h *Handler) ListCustomers(c echo.Context) error {
	out, err := h.svc.ListCustomers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetCustomer(c echo.Context) error {
	out, err := h.svc.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	out, err := h.svc.CreateCustomer(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	if err := h.svc.UpdateCustomer(c.Request().Context(), c.Param("id"), &req); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	if err := h.svc.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Orders

func orderFilter(c echo.Context) order.Filter {
	return order.Filter{
		Query: c.QueryParam("q"),
		Month: c.QueryParam("month"),
		Sort:  c.QueryParam("sort"),
	}
}

func (h *Handler) ListOrders(c echo.Context) error {
	out, err := h.svc.ListOrders(c.Request().Context(), orderFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetOrder(c echo.Context) error {
	out, err := h.svc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	out, err := h.svc.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	if err := h.svc.UpdateOrder(c.Request().Context(), c.Param("id"), &req); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	if err := h.svc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Follow-ups

func (h *Handler) ListFollowUps(c echo.Context) error {
	out, err := h.svc.ListFollowUps(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetFollowUp(c echo.Context) error {
	out, err := h.svc.GetFollowUp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateFollowUp(c echo.Context) error {
	var req FollowUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	out, err := h.svc.CreateFollowUp(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateFollowUp(c echo.Context) error {
	var req FollowUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed request"})
	}
	if err := h.svc.UpdateFollowUp(c.Request().Context(), c.Param("id"), &req); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteFollowUp(c echo.Context) error {
	if err := h.svc.DeleteFollowUp(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reporting

func paymentsFilter(c echo.Context) payments.Filter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	return payments.Filter{
		Month:  c.QueryParam("month"),
		Status: c.QueryParam("status"),
		Mode:   c.QueryParam("mode"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
	}
}

func (h *Handler) GetPayments(c echo.Context) error {
	out, err := h.svc.PaymentsView(c.Request().Context(), paymentsFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetDashboard(c echo.Context) error {
	out, err := h.svc.DashboardOverview(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// CSV exports

func csvResponse(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
}

func (h *Handler) ExportCustomersCSV(c echo.Context) error {
	rows, err := h.svc.ListCustomers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	csvResponse(c, "customers.csv")
	return export.Customers(c.Response(), rows)
}

func (h *Handler) ExportOrdersCSV(c echo.Context) error {
	rows, err := h.svc.ListOrders(c.Request().Context(), orderFilter(c))
	if err != nil {
		return fail(c, err)
	}
	csvResponse(c, "orders.csv")
	return export.Orders(c.Response(), rows)
}

func (h *Handler) ExportFollowUpsCSV(c echo.Context) error {
	rows, err := h.svc.ListFollowUps(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	csvResponse(c, "followups.csv")
	return export.FollowUps(c.Response(), rows)
}

func (h *Handler) ExportPaymentsCSV(c echo.Context) error {
	view, err := h.svc.PaymentsView(c.Request().Context(), paymentsFilter(c))
	if err != nil {
		return fail(c, err)
	}
	csvResponse(c, "payments.csv")
	return export.Payments(c.Response(), view.Rows)
}

// Backup

func (h *Handler) CreateBackup(c echo.Context) error {
	out, err := h.svc.CreateBackup(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
