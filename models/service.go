package models

// Service is a bookable treatment with its full daily slot schedule.
type Service struct {
	ID    string   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}
