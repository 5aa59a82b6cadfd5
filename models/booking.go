package models

// Booking represents a patient's reservation of one slot of one service on one date.
type Booking struct {
	ID            string  `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string  `bson:"treatment" json:"treatment"`                             // References Service.Name
	Date          string  `bson:"date" json:"date"`                                       // Opaque date label, e.g. "Jan 5, 2024"
	Slot          string  `bson:"slot" json:"slot"`                                       // One label from the service's slots
	PatientEmail  string  `bson:"patient" json:"patient"`                                 // Patient email
	PatientName   string  `bson:"patientName,omitempty" json:"patientName,omitempty"`     // Display name
	Phone         string  `bson:"phone,omitempty" json:"phone,omitempty"`                 // Contact phone
	Price         float64 `bson:"price,omitempty" json:"price,omitempty"`                 // Price at booking time
	Paid          bool    `bson:"paid" json:"paid"`                                       // Set on payment confirmation
	TransactionID string  `bson:"transactionId,omitempty" json:"transactionId,omitempty"` // Gateway transaction reference
}
