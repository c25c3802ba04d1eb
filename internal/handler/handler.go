package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/bookingmap-cl/bookingmap/backend/internal/config"
	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
	"github.com/bookingmap-cl/bookingmap/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
		r.With(h.auth, h.myInfo).Get("/me", h.GetMyInfo)
	})

	h.Mux.Route("/api/businesses", func(r chi.Router) {
		r.Get("/", h.GetAllBusinesses)
		r.With(h.auth, h.myInfo, h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateBusiness)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.business)
			r.With(h.auth, h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteBusiness)
			r.Get("/schedules", h.GetBusinessSchedules)
			r.With(h.auth, h.myInfo).Put("/schedules", h.UpdateBusinessSchedules)
			r.Get("/available-times", h.GetAvailableTimes)
		})
	})

	h.Mux.Route("/api/bookings", func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.myInfo).Post("/", h.CreateBooking)
		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.GetAllBookings)
		r.Get("/my-bookings", h.GetMyBookings)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.booking)
			r.Use(h.myInfo)
			r.Put("/cancel", h.CancelBooking)
			r.Patch("/status", h.UpdateBookingStatus)
		})
	})

	h.Mux.Route("/api/reviews", func(r chi.Router) {
		r.Route("/business/{businessId}", func(r chi.Router) {
			r.Use(h.reviewBusiness)
			r.Get("/", h.GetBusinessReviews)
			r.With(h.auth, h.myInfo).Post("/", h.CreateReview)
		})
	})
}
