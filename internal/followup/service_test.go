package followup_test

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/testutil"
)

func TestFollowUpLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := followup.NewService(db)

	next := "2025-08-20"
	created, err := svc.Create(ctx, &followup.FollowUp{
		Date:         "2025-07-20",
		CustomerName: "Kavya Sharma",
		Insta:        "@kavya.drapes",
		Topic:        "Payment reminder",
		NextDate:     &next,
		Status:       followup.StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FuID != "F001" {
		t.Errorf("expected first allocated ID F001, got %q", created.FuID)
	}
	if created.NextDate == nil || *created.NextDate != next {
		t.Errorf("next date not stored: %+v", created.NextDate)
	}

	// Mark done and clear the next touchpoint
	created.Status = followup.StatusDone
	created.NextDate = nil
	if err := svc.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, created.FuID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != followup.StatusDone {
		t.Errorf("expected status Done, got %q", got.Status)
	}
	if got.NextDate != nil {
		t.Errorf("expected cleared next date, got %q", *got.NextDate)
	}

	// Delete, then reads report not-found
	if err := svc.Delete(ctx, got.FuID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, got.FuID); !errors.Is(err, followup.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFollowUpValidation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := followup.NewService(db)

	if _, err := svc.Create(ctx, &followup.FollowUp{CustomerName: "  "}); !errors.Is(err, followup.ErrCustomerRequired) {
		t.Fatalf("expected ErrCustomerRequired, got %v", err)
	}

	bad := "20/08/2025"
	_, err := svc.Create(ctx, &followup.FollowUp{CustomerName: "Meera Nair", NextDate: &bad})
	if !errors.Is(err, followup.ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}

	// Unknown status collapses to Pending
	f, err := svc.Create(ctx, &followup.FollowUp{CustomerName: "Meera Nair", Status: "Open"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.Status != followup.StatusPending {
		t.Errorf("expected status Pending, got %q", f.Status)
	}
}

func TestFollowUpSearch(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := followup.NewService(db)

	seed := []followup.FollowUp{
		{CustomerName: "Kavya Sharma", Topic: "Payment reminder"},
		{CustomerName: "Meera Nair", Insta: "@meera_nair", Topic: "New stock preview"},
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
		{"kavya", "Kavya Sharma"},
		{"MEERA_NAIR", "Meera Nair"},
		{"stock", "Meera Nair"},
	}
	for _, tc := range cases {
		got, err := svc.List(ctx, tc.q)
		if err != nil {
			t.Fatalf("search %q: %v", tc.q, err)
		}
		if len(got) != 1 || got[0].CustomerName != tc.want {
			t.Errorf("search %q: expected [%s], got %+v", tc.q, tc.want, got)
		}
	}
}
