package customer_test

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/sqlite"
	"vihaavastra.com/sareecrm/internal/testutil"
)

func TestCustomerLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	// Create
	c := &customer.Customer{
		Name:  "Kavya Sharma",
		Insta: "@kavya.drapes",
		Phone: "9812045673",
		City:  "Hyderabad",
		CType: customer.TypeVIP,
		Notes: "Prefers silk",
	}

	created, err := svc.Create(ctx, c)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CustomerID != "C001" {
		t.Errorf("expected first allocated ID C001, got %q", created.CustomerID)
	}

	// Get returns exactly what was submitted
	got, err := svc.Get(ctx, created.CustomerID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *created {
		t.Errorf("round-trip mismatch: %+v vs %+v", got, created)
	}

	// Update
	got.City = "Secunderabad"
	if err := svc.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := svc.Get(ctx, got.CustomerID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.City != "Secunderabad" {
		t.Errorf("expected updated city %q, got %q", "Secunderabad", updated.City)
	}

	// Delete, then reads report not-found
	if err := svc.Delete(ctx, updated.CustomerID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.Get(ctx, updated.CustomerID)
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound getting deleted customer, got %v", err)
	}
}

func TestCustomerIDAllocation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	// Sequential creates without explicit IDs yield strictly increasing keys
	want := []string{"C001", "C002", "C003"}
	for i, w := range want {
		c, err := svc.Create(ctx, &customer.Customer{Name: "Customer"})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if c.CustomerID != w {
			t.Errorf("create %d: expected ID %q, got %q", i, w, c.CustomerID)
		}
	}

	// An explicit ID bypasses the allocator...
	c, err := svc.Create(ctx, &customer.Customer{CustomerID: "C1000", Name: "Big Suffix"})
	if err != nil {
		t.Fatalf("create with explicit ID: %v", err)
	}
	if c.CustomerID != "C1000" {
		t.Errorf("explicit ID was not kept: %q", c.CustomerID)
	}

	// ...and the allocator continues past it without truncating the padding
	next, err := svc.Create(ctx, &customer.Customer{Name: "After Big"})
	if err != nil {
		t.Fatalf("create after explicit ID: %v", err)
	}
	if next.CustomerID != "C1001" {
		t.Errorf("expected C1001 after C1000, got %q", next.CustomerID)
	}
}

func TestCustomerNameRequired(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	_, err := svc.Create(ctx, &customer.Customer{Name: "   "})
	if !errors.Is(err, customer.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCustomerDuplicateID(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	if _, err := svc.Create(ctx, &customer.Customer{CustomerID: "C007", Name: "First"}); err != nil {
		t.Fatalf("create first: %v", err)
	}

	_, err := svc.Create(ctx, &customer.Customer{CustomerID: "C007", Name: "Second"})
	if err == nil {
		t.Fatal("expected error for duplicate customer ID, got none")
	}
	if !sqlite.IsUniqueConstraintError(err) {
		t.Errorf("expected unique constraint error, got: %v", err)
	}
}

func TestCustomerSearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	seed := []customer.Customer{
		{Name: "Kavya Sharma", City: "Hyderabad"},
		{Name: "Meera Nair", City: "Kochi", Insta: "@meera_nair"},
		{Name: "Anita Reddy", Phone: "9765083214"},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	cases := []struct {
		q    string
		want string
	}{
		{"kavya", "Kavya Sharma"},   // name, lowercased query
		{"MEERA_NAIR", "Meera Nair"}, // insta, uppercased query
		{"976508", "Anita Reddy"},   // phone substring
		{"koch", "Meera Nair"},      // city substring
	}
	for _, tc := range cases {
		got, err := svc.List(ctx, tc.q)
		if err != nil {
			t.Fatalf("search %q: %v", tc.q, err)
		}
		if len(got) != 1 || got[0].Name != tc.want {
			t.Errorf("search %q: expected [%s], got %+v", tc.q, tc.want, got)
		}
	}

	// No filter returns everything in insertion order
	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 customers, got %d", len(all))
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	err := svc.Update(ctx, &customer.Customer{CustomerID: "C999", Name: "Ghost"})
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing customer, got %v", err)
	}

	if err := svc.Delete(ctx, "C999"); !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting missing customer, got %v", err)
	}
}
