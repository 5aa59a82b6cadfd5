package repository

import (
	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	userRepo "doctorsportal/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories groups every store the service layer depends on.
type Repositories struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Doctors  doctorRepo.DoctorRepository
	Payments paymentRepo.PaymentRepository
}

// NewMongoRepositories builds all Mongo-backed repositories over one database handle.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Catalog:  catalogRepo.NewMongoCatalogRepo(db),
		Bookings: bookingRepo.NewMongoBookingRepo(db),
		Users:    userRepo.NewMongoUserRepo(db),
		Doctors:  doctorRepo.NewMongoDoctorRepo(db),
		Payments: paymentRepo.NewMongoPaymentRepo(db),
	}
}
