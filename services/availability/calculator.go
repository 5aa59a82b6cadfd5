package availability

import "doctorsportal/models"

// Calculate returns a copy of services where each slot list holds only the
// labels not claimed by a booking for that service's name. bookingsForDate is
// expected to already be filtered to one date; the date label itself is
// informational only.
//
// Slot order and duplicates are preserved. A fully booked service gets an
// empty, non-nil slot list. The inputs are never mutated.
func Calculate(services []models.Service, bookingsForDate []models.Booking, _ string) []models.Service {
	booked := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookingsForDate {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	result := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			open = append(open, slot)
		}
		svc.Slots = open
		result = append(result, svc)
	}
	return result
}
