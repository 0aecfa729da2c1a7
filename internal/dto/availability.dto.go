package dto

// Slot labels use the 12-hour display form ("8:00 AM"). availableSlots and
// bookedSlots are always disjoint.
type AvailabilityDTO struct {
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}
