package models

// Doctor is an entry in the clinic roster.
type Doctor struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string `bson:"name" json:"name" binding:"required"`
	Email     string `bson:"email" json:"email" binding:"required,email"`
	Specialty string `bson:"specialty" json:"specialty" binding:"required"`
	Image     string `bson:"img,omitempty" json:"img,omitempty"`
}
