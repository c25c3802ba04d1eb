package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookingmap-cl/bookingmap/backend/internal/availability"
	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		BusinessID int64   `json:"business_id" validate:"required"`
		Date       string  `json:"date" validate:"required"`
		Time       string  `json:"time" validate:"required"`
		Service    *string `json:"service"`
		Notes      *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := availability.Weekday(req.Date); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	business, err := h.repository.GetBusinessByID(req.BusinessID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "business not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// friendly pre-check; the partial unique index below is the
	// authoritative one
	bookedTimes, err := h.repository.GetActiveBookingTimes(business.ID, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if _, taken := bookedTimes[req.Time]; taken {
		h.conflict(w, r, "this slot is no longer available")
		return
	}

	booking := &domain.Booking{
		UserID:          myInfo.ID,
		BusinessID:      business.ID,
		BusinessName:    business.Name,
		BusinessAddress: business.Address,
		UserName:        myInfo.Name,
		UserEmail:       myInfo.Email,
		Date:            req.Date,
		Time:            req.Time,
		Service:         req.Service,
		Notes:           req.Notes,
	}

	if err := h.repository.CreateBooking(booking); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "bookings_active_slot_key":
				// a concurrent booking won the slot between the pre-check
				// and the insert
				h.conflict(w, r, "this slot is no longer available")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishMail(domain.MailMessage{
		Type: "booking_confirmed",
		To:   booking.UserEmail,
		Data: domain.BookingMailData{
			Name:         booking.UserName,
			BusinessName: booking.BusinessName,
			Date:         booking.Date,
			Time:         booking.Time,
		},
	}); err != nil {
		slog.Error("unable to queue booking confirmation mail", "bookingId", booking.ID, "error", err)
	}

	h.createdResponse(w, r, "booking created", booking)
}

func (h *Handler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.repository.GetAllBookings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "bookings fetched", bookings)
}

func (h *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	subString := r.Context().Value(SubCtxKey).(string)

	sub, err := strconv.ParseInt(subString, 10, 64)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	bookings, err := h.repository.GetBookingsByUser(sub)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "bookings fetched", bookings)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	booking := r.Context().Value(BookingCtx).(*domain.Booking)

	if booking.UserID != myInfo.ID && !h.managesBusiness(myInfo, booking.BusinessID) {
		h.forbidden(w, r, "you cannot cancel this booking")
		return
	}

	updated, err := h.repository.UpdateBookingStatus(booking.ID, domain.BookingStatusCancelled)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "booking not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishMail(domain.MailMessage{
		Type: "booking_cancelled",
		To:   updated.UserEmail,
		Data: domain.BookingMailData{
			Name:         updated.UserName,
			BusinessName: updated.BusinessName,
			Date:         updated.Date,
			Time:         updated.Time,
		},
	}); err != nil {
		slog.Error("unable to queue booking cancellation mail", "bookingId", updated.ID, "error", err)
	}

	h.successResponse(w, r, "booking cancelled", updated)
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	booking := r.Context().Value(BookingCtx).(*domain.Booking)

	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !domain.ValidBookingStatus(req.Status) {
		h.errorResponse(w, r, http.StatusBadRequest, "status must be Confirmed, Cancelled or Completed")
		return
	}

	// only the business side may set arbitrary statuses; a booking's own
	// user goes through the cancel endpoint
	if !h.managesBusiness(myInfo, booking.BusinessID) {
		h.forbidden(w, r, "insufficient permissions")
		return
	}

	updated, err := h.repository.UpdateBookingStatus(booking.ID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "booking not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "booking status updated", updated)
}

// managesBusiness reports whether the user is an admin or owns the given
// business. A deleted business has no owner left, so only admins manage it.
func (h *Handler) managesBusiness(user *domain.User, businessID int64) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}

	business, err := h.repository.GetBusinessByID(businessID)
	if err != nil {
		return false
	}

	return business.OwnerID != nil && *business.OwnerID == user.ID
}
