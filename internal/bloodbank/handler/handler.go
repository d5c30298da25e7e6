// Package handler exposes the bloodbank façade over JSON HTTP. It stays
// thin: decode and validate the body, call the service, render the result.
// Business rules live behind the Service interface.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/service"
	dErrors "lifeline/pkg/domain-errors"
	"lifeline/pkg/platform/httputil"
	"lifeline/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service defines the bloodbank operations the handler depends on.
type Service interface {
	RegisterDonor(ctx context.Context, in service.RegisterDonorInput) (models.UserID, error)
	RegisterReceiver(ctx context.Context, in service.RegisterReceiverInput) (models.UserID, error)
	PostRequest(ctx context.Context, in service.PostRequestInput) (models.RequestID, error)
	RecordDonation(ctx context.Context, donorID, requestID string) (service.DonationReceipt, error)
	ListOpenRequests(ctx context.Context) ([]models.BloodRequest, error)
	ListEligibleDonors(ctx context.Context) ([]models.User, error)
	GetDonorProfile(ctx context.Context, userID string) (service.DonorProfile, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]models.BloodRequest, error)
}

// Handler wires bloodbank endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a bloodbank handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts bloodbank endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/register-donor", h.HandleRegisterDonor)
	r.Post("/api/register-receiver", h.HandleRegisterReceiver)
	r.Post("/api/post-request", h.HandlePostRequest)
	r.Post("/api/record-donation", h.HandleRecordDonation)
	r.Get("/api/get-requests", h.HandleGetRequests)
	r.Get("/api/get-donors", h.HandleGetDonors)
	r.Get("/api/donor-details", h.HandleDonorDetails)
	r.Get("/api/my-requests", h.HandleMyRequests)
}

// HandleRegisterDonor handles POST /api/register-donor requests.
func (h *Handler) HandleRegisterDonor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterDonorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	userID, err := h.service.RegisterDonor(ctx, service.RegisterDonorInput{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		BloodType:   req.BloodType,
		Location:    req.Location,
		Gender:      req.Gender,
		LastDonated: req.ParsedLastDonated(),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, RegisterResponse{UserID: string(userID)})
}

// HandleRegisterReceiver handles POST /api/register-receiver requests.
func (h *Handler) HandleRegisterReceiver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterReceiverRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	userID, err := h.service.RegisterReceiver(ctx, service.RegisterReceiverInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Location: req.Location,
		Gender:   req.Gender,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, RegisterResponse{UserID: string(userID)})
}

// HandlePostRequest handles POST /api/post-request requests.
func (h *Handler) HandlePostRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PostRequestRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	id, err := h.service.PostRequest(ctx, service.PostRequestInput{
		RequesterID:  req.RequesterID,
		BloodType:    req.BloodType,
		HospitalArea: req.HospitalArea,
		UnitsNeeded:  req.UnitsNeeded,
		Seriousness:  req.Seriousness,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, PostRequestResponse{RequestID: string(id)})
}

// HandleRecordDonation handles POST /api/record-donation requests.
func (h *Handler) HandleRecordDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RecordDonationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	receipt, err := h.service.RecordDonation(ctx, req.DonorID, req.RequestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "donation handled",
		"request_id", requestID,
		"donation_id", receipt.DonationID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromReceipt(receipt))
}

// HandleGetRequests handles GET /api/get-requests requests. It lists every
// request still accepting donations.
func (h *Handler) HandleGetRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.service.ListOpenRequests(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRequests(requests))
}

// HandleGetDonors handles GET /api/get-donors requests. It lists donors
// currently eligible to donate.
func (h *Handler) HandleGetDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donors, err := h.service.ListEligibleDonors(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDonors(donors))
}

// HandleDonorDetails handles GET /api/donor-details?userId= requests.
func (h *Handler) HandleDonorDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "userId query parameter is required"))
		return
	}

	profile, err := h.service.GetDonorProfile(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProfile(profile))
}

// HandleMyRequests handles GET /api/my-requests?userId= requests.
func (h *Handler) HandleMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "userId query parameter is required"))
		return
	}

	requests, err := h.service.ListRequestsByUser(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRequests(requests))
}
