package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/payment"

	"go.uber.org/zap"
)

// -- Mock Repositories --

type mockBookingRepo struct {
	mu        sync.Mutex
	bookings  map[string]*models.Booking
	seq       int
	insertErr error
	lookupErr error
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (m *mockBookingRepo) FetchByDate(_ context.Context, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) FetchByKey(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, b := range m.bookings {
		if b.Treatment == treatment && b.Date == date && b.PatientEmail == patient {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) Insert(_ context.Context, b models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.seq++
	b.ID = fmt.Sprintf("b%d", m.seq)
	m.bookings[b.ID] = &b
	cp := b
	return &cp, nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepo) ListByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.PatientEmail == patient {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) MarkPaid(_ context.Context, id, txn string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	for otherID, other := range m.bookings {
		if otherID != id && other.TransactionID == txn {
			return nil, bookingRepo.ErrDuplicateTransaction
		}
	}
	b.Paid = true
	b.TransactionID = txn
	cp := *b
	return &cp, nil
}

type mockPaymentRepo struct {
	payments []models.Payment
	err      error
}

func (m *mockPaymentRepo) Create(_ context.Context, p models.Payment) (*models.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	p.ID = fmt.Sprintf("p%d", len(m.payments)+1)
	m.payments = append(m.payments, p)
	return &p, nil
}

type mockGateway struct {
	intents map[string]*payment.Intent
	err     error
}

func (m *mockGateway) CreateIntent(context.Context, float64, string) (string, error) {
	return "secret", nil
}

func (m *mockGateway) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	if m.err != nil {
		return nil, m.err
	}
	intent, ok := m.intents[id]
	if !ok {
		return nil, payment.ErrIntentNotFound
	}
	return intent, nil
}

func newTestService() (*DefaultBookingService, *mockBookingRepo, *mockPaymentRepo) {
	repo := newMockBookingRepo()
	payments := &mockPaymentRepo{}
	gateway := &mockGateway{intents: map[string]*payment.Intent{
		"pi_123":     {ID: "pi_123", Status: payment.IntentSucceeded, Amount: 5000, Currency: "usd"},
		"pi_pending": {ID: "pi_pending", Status: "requires_payment_method", Amount: 5000, Currency: "usd"},
		"pi_cheap":   {ID: "pi_cheap", Status: payment.IntentSucceeded, Amount: 100, Currency: "usd"},
	}}
	svc := &DefaultBookingService{Repo: repo, Payments: payments, Gateway: gateway, Logger: zap.NewNop()}
	return svc, repo, payments
}

func pricedCleaning(patient, slot string) models.Booking {
	b := cleaning(patient, slot)
	b.Price = 50
	return b
}

func cleaning(patient, slot string) models.Booking {
	return models.Booking{Treatment: "Cleaning", Date: "2024-01-05", PatientEmail: patient, Slot: slot}
}

// -- Admission --

func TestAdmit_Accepts(t *testing.T) {
	svc, repo, _ := newTestService()
	res, err := svc.Admit(context.Background(), cleaning("a@x.com", "9AM"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted() || res.Status != AdmissionAccepted {
		t.Fatalf("expected accepted, got %v", res.Status)
	}
	if res.Booking.ID == "" {
		t.Error("expected an assigned identifier")
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected exactly one insertion, got %d", len(repo.bookings))
	}
}

func TestAdmit_RejectsSamePatientTreatmentDateRegardlessOfSlot(t *testing.T) {
	svc, repo, _ := newTestService()
	first, _ := svc.Admit(context.Background(), cleaning("a@x.com", "9AM"))

	res, err := svc.Admit(context.Background(), cleaning("a@x.com", "10AM"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != AdmissionConflict {
		t.Fatalf("expected conflict, got %v", res.Status)
	}
	if res.Booking.ID != first.Booking.ID || res.Booking.Slot != "9AM" {
		t.Errorf("expected the original booking back, got %+v", res.Booking)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected no insertion on conflict, got %d bookings", len(repo.bookings))
	}
}

func TestAdmit_AllowsDifferentPatientsSameSlot(t *testing.T) {
	svc, repo, _ := newTestService()
	if res, _ := svc.Admit(context.Background(), cleaning("a@x.com", "9AM")); !res.Accepted() {
		t.Fatal("first booking should be accepted")
	}
	res, err := svc.Admit(context.Background(), cleaning("b@x.com", "9AM"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted() {
		t.Errorf("expected second patient to be accepted for the same slot, got %v", res.Status)
	}
	if len(repo.bookings) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(repo.bookings))
	}
}

func TestAdmit_SamePatientOtherDateOrTreatment(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Admit(context.Background(), cleaning("a@x.com", "9AM"))

	other := cleaning("a@x.com", "9AM")
	other.Date = "2024-01-06"
	if res, _ := svc.Admit(context.Background(), other); !res.Accepted() {
		t.Error("different date should be accepted")
	}
	other = cleaning("a@x.com", "9AM")
	other.Treatment = "Whitening"
	if res, _ := svc.Admit(context.Background(), other); !res.Accepted() {
		t.Error("different treatment should be accepted")
	}
}

func TestAdmit_DoesNotValidateSlotAgainstCatalog(t *testing.T) {
	svc, _, _ := newTestService()
	res, err := svc.Admit(context.Background(), cleaning("a@x.com", "3AM"))
	if err != nil || !res.Accepted() {
		t.Errorf("expected unknown slot to be accepted, got %v, %v", res.Status, err)
	}
}

func TestAdmit_MissingFields(t *testing.T) {
	svc, repo, _ := newTestService()
	cases := []models.Booking{
		{Date: "d", Slot: "s", PatientEmail: "p"},
		{Treatment: "t", Slot: "s", PatientEmail: "p"},
		{Treatment: "t", Date: "d", PatientEmail: "p"},
		{Treatment: "t", Date: "d", Slot: "s"},
	}
	for i, c := range cases {
		if _, err := svc.Admit(context.Background(), c); !errors.Is(err, ErrInvalidBooking) {
			t.Errorf("case %d: expected ErrInvalidBooking, got %v", i, err)
		}
	}
	if len(repo.bookings) != 0 {
		t.Error("invalid candidates must not be stored")
	}
}

func TestAdmit_ClearsClientPaymentFields(t *testing.T) {
	svc, _, _ := newTestService()
	c := cleaning("a@x.com", "9AM")
	c.Paid = true
	c.TransactionID = "forged"
	res, _ := svc.Admit(context.Background(), c)
	if res.Booking.Paid || res.Booking.TransactionID != "" {
		t.Errorf("expected unpaid booking, got %+v", res.Booking)
	}
}

func TestAdmit_StoreFailures(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.lookupErr = errors.New("timeout")
	if _, err := svc.Admit(context.Background(), cleaning("a@x.com", "9AM")); err == nil {
		t.Error("expected lookup failure")
	}

	svc, repo, _ = newTestService()
	repo.insertErr = errors.New("timeout")
	if _, err := svc.Admit(context.Background(), cleaning("a@x.com", "9AM")); err == nil {
		t.Error("expected insert failure")
	}
}

// -- Queries --

func TestListForPatient(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Admit(context.Background(), cleaning("a@x.com", "9AM"))
	svc.Admit(context.Background(), cleaning("b@x.com", "9AM"))

	got, err := svc.ListForPatient(context.Background(), "a@x.com", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].PatientEmail != "a@x.com" {
		t.Errorf("unexpected bookings %+v", got)
	}

	if _, err := svc.ListForPatient(context.Background(), "a@x.com", "b@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc, _, _ := newTestService()
	res, _ := svc.Admit(context.Background(), cleaning("a@x.com", "9AM"))

	got, err := svc.GetByID(context.Background(), "a@x.com", res.Booking.ID)
	if err != nil || got.ID != res.Booking.ID {
		t.Fatalf("owner lookup: got %+v, %v", got, err)
	}
	if _, err := svc.GetByID(context.Background(), "stranger@x.com", res.Booking.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "a@x.com", "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

// -- Payment confirmation --

func TestConfirmPayment(t *testing.T) {
	svc, _, payments := newTestService()
	res, _ := svc.Admit(context.Background(), pricedCleaning("a@x.com", "9AM"))

	updated, err := svc.ConfirmPayment(context.Background(), "a@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Paid || updated.TransactionID != "pi_123" {
		t.Errorf("expected paid booking, got %+v", updated)
	}
	if len(payments.payments) != 1 || payments.payments[0].BookingID != res.Booking.ID || payments.payments[0].Amount != 50 {
		t.Errorf("expected one payment record of 50, got %+v", payments.payments)
	}

	again, err := svc.ConfirmPayment(context.Background(), "a@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"})
	if err != nil || !again.Paid {
		t.Errorf("repeat confirmation should be a no-op, got %+v, %v", again, err)
	}
	if len(payments.payments) != 1 {
		t.Errorf("repeat confirmation must not record another payment, got %d", len(payments.payments))
	}
}

func TestConfirmPayment_RejectsNonOwner(t *testing.T) {
	svc, repo, payments := newTestService()
	res, _ := svc.Admit(context.Background(), pricedCleaning("victim@x.com", "9AM"))

	_, err := svc.ConfirmPayment(context.Background(), "stranger@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.bookings[res.Booking.ID].Paid || len(payments.payments) != 0 {
		t.Error("a non-owner must not change the booking")
	}
}

func TestConfirmPayment_RequiresSettledIntent(t *testing.T) {
	cases := map[string]string{
		"unknown intent": "made-up",
		"not settled":    "pi_pending",
		"wrong amount":   "pi_cheap",
	}
	for name, txn := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			res, _ := svc.Admit(context.Background(), pricedCleaning("a@x.com", "9AM"))

			_, err := svc.ConfirmPayment(context.Background(), "a@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: txn})
			if !errors.Is(err, ErrPaymentNotVerified) {
				t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
			}
			if repo.bookings[res.Booking.ID].Paid {
				t.Error("booking must stay unpaid")
			}
		})
	}
}

func TestConfirmPayment_TransactionSettlesOneBooking(t *testing.T) {
	svc, _, _ := newTestService()
	first, _ := svc.Admit(context.Background(), pricedCleaning("a@x.com", "9AM"))
	second := pricedCleaning("a@x.com", "9AM")
	second.Treatment = "Whitening"
	other, _ := svc.Admit(context.Background(), second)

	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", first.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", other.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"}); !errors.Is(err, ErrTransactionUsed) {
		t.Errorf("expected ErrTransactionUsed, got %v", err)
	}
	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", first.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_other"}); !errors.Is(err, ErrAlreadyPaid) {
		t.Errorf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestConfirmPayment_Errors(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", "missing", models.PaymentConfirmation{TransactionID: "t"}); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", "x", models.PaymentConfirmation{}); !errors.Is(err, ErrMissingTxn) {
		t.Errorf("expected ErrMissingTxn, got %v", err)
	}

	svc.Gateway = &mockGateway{err: fmt.Errorf("%w: timeout", payment.ErrGateway)}
	res, _ := svc.Admit(context.Background(), pricedCleaning("a@x.com", "9AM"))
	if _, err := svc.ConfirmPayment(context.Background(), "a@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"}); !errors.Is(err, payment.ErrGateway) {
		t.Errorf("expected ErrGateway, got %v", err)
	}
}

func TestConfirmPayment_PaymentRecordFailureStillReturnsBooking(t *testing.T) {
	svc, _, payments := newTestService()
	payments.err = errors.New("write failed")
	res, _ := svc.Admit(context.Background(), pricedCleaning("a@x.com", "9AM"))

	updated, err := svc.ConfirmPayment(context.Background(), "a@x.com", res.Booking.ID, models.PaymentConfirmation{TransactionID: "pi_123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Paid {
		t.Error("expected booking marked paid")
	}
}

func TestAdmissionStatus_String(t *testing.T) {
	if AdmissionAccepted.String() != "accepted" || AdmissionConflict.String() != "conflict" || AdmissionStatus(0).String() != "unknown" {
		t.Error("unexpected status names")
	}
}
