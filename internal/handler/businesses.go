package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/bookingmap-cl/bookingmap/backend/internal/availability"
	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
	"github.com/bookingmap-cl/bookingmap/backend/internal/utils"
)

func (h *Handler) GetAllBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.repository.GetAllBusinesses()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "businesses fetched", businesses)
}

type scheduleRequest struct {
	DayOfWeek       int32  `json:"dayOfWeek" validate:"gte=0,lte=6"`
	IsOpen          bool   `json:"isOpen"`
	OpenTime        string `json:"openTime"`
	CloseTime       string `json:"closeTime"`
	BookingInterval int32  `json:"bookingInterval"`
}

func schedulesFromRequest(reqs []scheduleRequest) []domain.Schedule {
	schedules := make([]domain.Schedule, 0, len(reqs))
	for _, s := range reqs {
		interval := s.BookingInterval
		if interval == 0 {
			interval = 30
		}
		schedules = append(schedules, domain.Schedule{
			DayOfWeek:       s.DayOfWeek,
			IsOpen:          s.IsOpen,
			OpenTime:        s.OpenTime,
			CloseTime:       s.CloseTime,
			BookingInterval: interval,
		})
	}
	return schedules
}

func (h *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name         string            `json:"name" validate:"required"`
		Category     string            `json:"category" validate:"required"`
		Type         string            `json:"type" validate:"required"`
		BusinessType string            `json:"businessType" validate:"required,oneof=pyme company"`
		Lat          float64           `json:"lat" validate:"required"`
		Lng          float64           `json:"lng" validate:"required"`
		Address      string            `json:"address" validate:"required"`
		Phone        string            `json:"phone" validate:"required"`
		Schedules    []scheduleRequest `json:"schedules" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	business := &domain.Business{
		Name:         req.Name,
		Category:     req.Category,
		Type:         req.Type,
		BusinessType: domain.BusinessType(req.BusinessType),
		Lat:          req.Lat,
		Lng:          req.Lng,
		Address:      req.Address,
		Phone:        req.Phone,
		OwnerID:      &myInfo.ID,
		Schedules:    schedulesFromRequest(req.Schedules),
	}

	if err := utils.ValidateWeeklySchedules(business.Schedules); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateBusiness(business); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "business created", business)
}

func (h *Handler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	if err := h.repository.DeleteBusiness(business.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "business not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "business deleted", nil)
}

func (h *Handler) GetBusinessSchedules(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	schedules, err := h.repository.GetSchedules(business.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedules fetched", schedules)
}

func (h *Handler) UpdateBusinessSchedules(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	if myInfo.Role != domain.RoleAdmin && (business.OwnerID == nil || *business.OwnerID != myInfo.ID) {
		h.forbidden(w, r, "only the business owner may change its hours")
		return
	}

	var req struct {
		Schedules []scheduleRequest `json:"schedules" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedules := schedulesFromRequest(req.Schedules)
	if err := utils.ValidateWeeklySchedules(schedules); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplaceSchedules(business.ID, schedules); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedules updated", schedules)
}

func (h *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	date := r.URL.Query().Get("date")
	if date == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "date query parameter is required")
		return
	}
	if _, err := availability.Weekday(date); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	schedules, err := h.repository.GetSchedules(business.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	bookedTimes, err := h.repository.GetActiveBookingTimes(business.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slots, err := availability.ForDate(schedules, date, bookedTimes)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	h.successResponse(w, r, "available times fetched", slots)
}
