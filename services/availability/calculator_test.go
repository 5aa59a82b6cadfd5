package availability

import (
	"reflect"
	"testing"

	"doctorsportal/models"
)

func catalog() []models.Service {
	return []models.Service{
		{Name: "Cleaning", Price: 50, Slots: []string{"9AM", "10AM", "11AM"}},
		{Name: "Whitening", Price: 120, Slots: []string{"9AM", "1PM"}},
	}
}

func TestCalculate_Scenario(t *testing.T) {
	services := []models.Service{{Name: "Cleaning", Price: 50, Slots: []string{"9AM", "10AM", "11AM"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Date: "2024-01-05", Slot: "10AM", PatientEmail: "a@x.com"}}

	got := Calculate(services, bookings, "2024-01-05")
	want := []models.Service{{Name: "Cleaning", Price: 50, Slots: []string{"9AM", "11AM"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestCalculate_NoBookingsIsIdentity(t *testing.T) {
	in := catalog()
	got := Calculate(in, nil, "2024-01-05")
	if !reflect.DeepEqual(got, catalog()) {
		t.Errorf("expected catalog unchanged, got %+v", got)
	}
}

func TestCalculate_OnlySubtracts(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "11AM"},
		{Treatment: "Whitening", Slot: "9AM"},
		{Treatment: "Cleaning", Slot: "5PM"},
	}
	got := Calculate(catalog(), bookings, "d")
	original := catalog()
	for i, svc := range got {
		if !isSubsequence(svc.Slots, original[i].Slots) {
			t.Errorf("%s: %v is not a subsequence of %v", svc.Name, svc.Slots, original[i].Slots)
		}
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "10AM"}) {
		t.Errorf("unexpected Cleaning slots %v", got[0].Slots)
	}
	if !reflect.DeepEqual(got[1].Slots, []string{"1PM"}) {
		t.Errorf("unexpected Whitening slots %v", got[1].Slots)
	}
}

func TestCalculate_FullyBookedIsEmptyNotNil(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Whitening", Slot: "9AM"},
		{Treatment: "Whitening", Slot: "1PM"},
	}
	got := Calculate(catalog(), bookings, "d")
	if got[1].Slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got[1].Slots) != 0 {
		t.Errorf("expected no slots, got %v", got[1].Slots)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	bookings := []models.Booking{{Treatment: "Cleaning", Slot: "9AM"}}
	first := Calculate(catalog(), bookings, "d")
	second := Calculate(catalog(), bookings, "d")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	in := catalog()
	slotsBefore := in[0].Slots
	Calculate(in, []models.Booking{{Treatment: "Cleaning", Slot: "9AM"}}, "d")

	if !reflect.DeepEqual(in, catalog()) {
		t.Errorf("input catalog was mutated: %+v", in)
	}
	if &slotsBefore[0] != &in[0].Slots[0] {
		t.Error("input slot slice was replaced")
	}
}

func TestCalculate_PreservesDuplicateLabels(t *testing.T) {
	in := []models.Service{{Name: "X", Slots: []string{"9AM", "9AM", "10AM"}}}
	got := Calculate(in, []models.Booking{{Treatment: "X", Slot: "10AM"}}, "d")
	if !reflect.DeepEqual(got[0].Slots, []string{"9AM", "9AM"}) {
		t.Errorf("expected duplicates kept, got %v", got[0].Slots)
	}
}

func TestCalculate_EmptyCatalog(t *testing.T) {
	got := Calculate(nil, []models.Booking{{Treatment: "X", Slot: "1"}}, "d")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func isSubsequence(sub, full []string) bool {
	i := 0
	for _, s := range full {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}
