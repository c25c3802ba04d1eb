package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	var req struct {
		Rating  int32  `json:"rating" validate:"required,gte=1,lte=5"`
		Comment string `json:"comment"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	review := &domain.Review{
		BusinessID: business.ID,
		UserID:     myInfo.ID,
		UserName:   myInfo.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := h.repository.CreateReview(review); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "reviews_business_id_user_id_key":
				h.conflict(w, r, "you have already reviewed this business")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "review created", review)
}

func (h *Handler) GetBusinessReviews(w http.ResponseWriter, r *http.Request) {
	business := r.Context().Value(BusinessCtx).(*domain.Business)

	reviews, err := h.repository.GetReviewsByBusiness(business.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "reviews fetched", reviews)
}
