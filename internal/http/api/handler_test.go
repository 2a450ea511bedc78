package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"

	"vihaavastra.com/sareecrm/internal/backup"
	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/dashboard"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/http/api"
	"vihaavastra.com/sareecrm/internal/order"
	"vihaavastra.com/sareecrm/internal/payments"
	"vihaavastra.com/sareecrm/internal/testutil"
)

func newHandler(t *testing.T) *api.Handler {
	t.Helper()
	db := testutil.NewTestDB(t)

	svc := api.NewService(
		customer.NewService(db),
		order.NewService(db),
		followup.NewService(db),
		payments.NewService(db),
		dashboard.NewService(db),
		backup.NewService(db, ""),
	)
	return api.NewHandler(svc)
}

func TestCreateCustomerFromForm(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	form := url.Values{}
	form.Set("name", "Kavya Sharma")
	form.Set("city", "Hyderabad")
	form.Set("ctype", "VIP")

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body)
	}

	var got customer.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.CustomerID != "C001" || got.Name != "Kavya Sharma" {
		t.Errorf("unexpected response: %+v", got)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/customers",
		strings.NewReader(`{"city":"Kochi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d for missing name, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreateCustomerDuplicateID(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	post := func() *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/customers",
			strings.NewReader(`{"customerId":"C007","name":"Kavya Sharma"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.CreateCustomer(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec
	}

	if rec := post(); rec.Code != http.StatusCreated {
		t.Fatalf("first create: expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body)
	}

	rec := post()
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: expected status %d, got %d: %s", http.StatusConflict, rec.Code, rec.Body)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(got["error"], "already exists") {
		t.Errorf("expected a duplicate-key message, got %q", got["error"])
	}
}

func TestCreateOrderMissingAmount(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	body := `{"date":"2025-06-14","customerId":"C001","sareeType":"Kanchipuram",` +
		`"paymentStatus":"Paid","deliveryStatus":"Delivered","paymentMode":"UPI"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.CreateOrder(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for missing amount, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body)
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/customers/C999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("C999")

	if err := h.GetCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestOrderCreateAndExportCSV(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	body := `{"date":"2025-06-14","customerId":"C001","sareeType":"Kanchipuram","amount":3499,` +
		`"paymentStatus":"Paid","deliveryStatus":"Delivered","purchaseType":"Online","paymentMode":"UPI"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.CreateOrder(e.NewContext(req, rec)); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/export/orders.csv", nil)
	rec = httptest.NewRecorder()
	if err := h.ExportOrdersCSV(e.NewContext(req, rec)); err != nil {
		t.Fatalf("export orders: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	wantHeader := "order_id,date,customer_id,saree_type,amount,payment_status,delivery_status,remarks,purchase_type,payment_mode"
	if lines[0] != wantHeader {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "O001,2025-06-14,C001,Kanchipuram,3499,Paid,Delivered") {
		t.Errorf("unexpected CSV row: %s", lines[1])
	}
}

func TestDashboardEndpoint(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	if err := h.GetDashboard(e.NewContext(req, rec)); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got dashboard.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalCustomers != 0 || got.AvgOrderValue != 0 {
		t.Errorf("unexpected overview for empty database: %+v", got)
	}
}

func TestPaymentsEndpoint(t *testing.T) {
	h := newHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/payments?page=2&sort=amount", nil)
	rec := httptest.NewRecorder()
	if err := h.GetPayments(e.NewContext(req, rec)); err != nil {
		t.Fatalf("payments: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var got payments.View
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Empty table, out-of-range page: empty rows, no error
	if got.Page != 2 || got.Total != 0 || len(got.Rows) != 0 {
		t.Errorf("unexpected view: %+v", got)
	}
}
