package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/wonderbd/tourism-backend/internal/models"
)

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	repo := &fakePaymentRepo{}
	provider := &fakePaymentProvider{}
	h := NewPaymentHandler(repo, provider, testLogger())

	for _, body := range []string{
		`{"amount":0,"bookingId":"bk1"}`,
		`{"amount":-5,"bookingId":"bk1"}`,
	} {
		c, _ := newTestContext(http.MethodPost, "/create-payment-intent", body)
		if httpErrorCode(h.CreatePaymentIntent(c)) != http.StatusBadRequest {
			t.Errorf("expected 400 for body %s", body)
		}
	}
	if len(repo.payments) != 0 {
		t.Error("rejected request must not create a payment record")
	}
	if len(provider.intents) != 0 {
		t.Error("rejected request must not call the provider")
	}
}

func TestCreatePaymentIntentRecordsPendingPayment(t *testing.T) {
	repo := &fakePaymentRepo{}
	h := NewPaymentHandler(repo, &fakePaymentProvider{}, testLogger())

	c, rec := newTestContext(http.MethodPost, "/create-payment-intent",
		`{"amount":120.5,"bookingId":"bk1"}`)
	if err := h.CreatePaymentIntent(c); err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["clientSecret"] != "pi_test_123_secret" {
		t.Errorf("expected provider client secret, got %q", body["clientSecret"])
	}

	if len(repo.payments) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(repo.payments))
	}
	payment := repo.payments[0]
	if payment.PaymentIntentID != "pi_test_123" || payment.BookingID != "bk1" {
		t.Errorf("payment record not keyed correctly: %+v", payment)
	}
	if payment.Status != models.PaymentStatusPending {
		t.Errorf("expected pending status, got %q", payment.Status)
	}
	if payment.Amount != 120.5 {
		t.Errorf("expected amount 120.5, got %v", payment.Amount)
	}
}

func TestCreatePaymentIntentRoundsFractionalAmountsToCents(t *testing.T) {
	provider := &fakePaymentProvider{}
	h := NewPaymentHandler(&fakePaymentRepo{}, provider, testLogger())

	cases := []struct {
		body string
		want int64
	}{
		{`{"amount":19.99,"bookingId":"bk1"}`, 1999},
		{`{"amount":0.1,"bookingId":"bk1"}`, 10},
		{`{"amount":120.5,"bookingId":"bk1"}`, 12050},
	}
	for _, tc := range cases {
		c, _ := newTestContext(http.MethodPost, "/create-payment-intent", tc.body)
		if err := h.CreatePaymentIntent(c); err != nil {
			t.Fatalf("CreatePaymentIntent returned error for %s: %v", tc.body, err)
		}
	}

	for i, tc := range cases {
		if provider.amounts[i] != tc.want {
			t.Errorf("body %s: provider charged %d cents, want %d", tc.body, provider.amounts[i], tc.want)
		}
	}
}

func TestCreatePaymentIntentProviderFailureIs500(t *testing.T) {
	repo := &fakePaymentRepo{}
	provider := &fakePaymentProvider{err: errors.New("card network unavailable")}
	h := NewPaymentHandler(repo, provider, testLogger())

	c, _ := newTestContext(http.MethodPost, "/create-payment-intent",
		`{"amount":50,"bookingId":"bk1"}`)
	if httpErrorCode(h.CreatePaymentIntent(c)) != http.StatusInternalServerError {
		t.Error("expected 500 when the provider call fails")
	}
	if len(repo.payments) != 0 {
		t.Error("failed provider call must not create a payment record")
	}
}

func TestUpdatePaymentStatusReturnsNormalizedOutcome(t *testing.T) {
	repo := &fakePaymentRepo{payments: []models.Payment{
		{PaymentIntentID: "pi_test_123", Status: models.PaymentStatusPending},
	}}
	h := NewPaymentHandler(repo, &fakePaymentProvider{}, testLogger())

	c, rec := newTestContext(http.MethodPost, "/payments/update",
		`{"paymentIntentId":"pi_test_123","status":"succeeded"}`)
	if err := h.UpdatePaymentStatus(c); err != nil {
		t.Fatalf("UpdatePaymentStatus returned error: %v", err)
	}

	var outcome models.UpdateOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !outcome.Matched || !outcome.Modified {
		t.Errorf("expected matched and modified, got %+v", outcome)
	}
	if repo.payments[0].Status != "succeeded" {
		t.Errorf("status not updated, got %q", repo.payments[0].Status)
	}
}
