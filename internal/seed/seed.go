package seed

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
	"github.com/bookingmap-cl/bookingmap/backend/internal/repository"
)

// SeedSampleData loads a small, deterministic data set for local
// development: one regular user, a bookable salon with weekday hours, an
// info-only pharmacy, a booking and a review.
func SeedSampleData(r *repository.Repository, userPassword string) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(userPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("unable to hash sample user password", "error", err)
		return
	}

	user := &domain.User{
		Name:         "Juan Pérez",
		Email:        "juan@email.com",
		Phone:        "+56987654321",
		PasswordHash: string(passwordHash),
		Role:         domain.RoleUser,
	}
	if err := r.CreateUser(user); err != nil {
		slog.Error("unable to insert sample user", "error", err)
		return
	}

	salon := &domain.Business{
		Name:         "Peluquería Estilo",
		Category:     "beauty",
		Type:         "bookable",
		BusinessType: domain.BusinessTypePyme,
		Lat:          -33.4372,
		Lng:          -70.6506,
		Address:      "Av. Providencia 123, Santiago",
		Phone:        "+56922334455",
	}
	// Monday through Friday, 09:00-18:00, 30 minute slots
	for day := int32(1); day <= 5; day++ {
		salon.Schedules = append(salon.Schedules, domain.Schedule{
			DayOfWeek:       day,
			IsOpen:          true,
			OpenTime:        "09:00",
			CloseTime:       "18:00",
			BookingInterval: 30,
		})
	}
	if err := r.CreateBusiness(salon); err != nil {
		slog.Error("unable to insert sample salon", "error", err)
		return
	}

	pharmacy := &domain.Business{
		Name:         "Farmacia Salud Total",
		Category:     "health",
		Type:         "info-only",
		BusinessType: domain.BusinessTypeCompany,
		Lat:          -33.4450,
		Lng:          -70.6570,
		Address:      "Av. Libertador Bernardo O'Higgins 500, Santiago",
		Phone:        "+56923456789",
	}
	if err := r.CreateBusiness(pharmacy); err != nil {
		slog.Error("unable to insert sample pharmacy", "error", err)
		return
	}

	service := "Corte de Cabello"
	booking := &domain.Booking{
		UserID:          user.ID,
		BusinessID:      salon.ID,
		BusinessName:    salon.Name,
		BusinessAddress: salon.Address,
		UserName:        user.Name,
		UserEmail:       user.Email,
		Date:            "2026-09-07", // a Monday
		Time:            "10:00",
		Service:         &service,
	}
	if err := r.CreateBooking(booking); err != nil {
		slog.Error("unable to insert sample booking", "error", err)
		return
	}

	review := &domain.Review{
		BusinessID: salon.ID,
		UserID:     user.ID,
		Rating:     5,
		Comment:    "Excelente atención, muy recomendable.",
	}
	if err := r.CreateReview(review); err != nil {
		slog.Error("unable to insert sample review", "error", err)
		return
	}

	slog.Info("sample data loaded", "user", user.Email, "businesses", 2)
}
