package pmshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"bizsuite/internal/domain/appraisal"
	"bizsuite/internal/transport/http/api"
	"bizsuite/internal/transport/http/middleware"
	"bizsuite/internal/transport/http/shared"
)

type Handler struct {
	Service  *appraisal.Service
	Validate *validator.Validate
}

func NewHandler(service *appraisal.Service) *Handler {
	return &Handler{Service: service, Validate: validator.New()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/pms", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/tasks/{taskID}", h.handleTaskDetail)
		r.Post("/tasks/{taskID}/progress", h.handleSubmitProgress)
	})
}

type documentRequest struct {
	Name      string `json:"name" validate:"required"`
	SizeLabel string `json:"sizeLabel"`
	MimeType  string `json:"mimeType"`
	Content   []byte `json:"content"`
}

type progressRequest struct {
	Note     string           `json:"note" validate:"required"`
	Progress *int             `json:"progressPercentage" validate:"omitempty,min=0,max=100"`
	Rating   *int             `json:"rating" validate:"omitempty,min=1,max=5"`
	Document *documentRequest `json:"document" validate:"omitempty"`
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.GetEmployee(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	dashboard, err := h.Service.Dashboard(r.Context(), employee.EmployeeCode, shared.ParsePage(r))
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTaskDetail(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.GetEmployee(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	detail, err := h.Service.TaskDetail(r.Context(), employee.EmployeeCode, chi.URLParam(r, "taskID"))
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Success(w, detail, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmitProgress(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.GetEmployee(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload progressRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		fields := map[string]string{}
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				fields[fieldErr.Field()] = fieldErr.Tag()
			}
		}
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed", map[string]any{"fields": fields}, middleware.GetRequestID(r.Context()))
		return
	}

	draft := appraisal.Draft{
		Note:    payload.Note,
		Percent: payload.Progress,
		Rating:  payload.Rating,
	}
	if payload.Document != nil {
		draft.Document = &appraisal.Document{
			Name:      payload.Document.Name,
			SizeLabel: payload.Document.SizeLabel,
			MimeType:  payload.Document.MimeType,
			Content:   payload.Document.Content,
		}
	}

	created, err := h.Service.SubmitProgress(r.Context(), employee.EmployeeCode, chi.URLParam(r, "taskID"), draft)
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

// failDomain maps domain and repository errors onto the response envelope.
// Draft rejections come back as 400s with the sentinel's message so the
// client can show it inline and keep the draft open.
func (h *Handler) failDomain(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var valErr *appraisal.ValidationError
	if errors.As(err, &valErr) {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "submission rejected by server", map[string]any{"fields": valErr.Fields}, requestID)
		return
	}

	switch {
	case errors.Is(err, appraisal.ErrTaskNotFound):
		api.Fail(w, http.StatusNotFound, "task_not_found", err.Error(), requestID)
	case errors.Is(err, appraisal.ErrEmployeeIDInvalid):
		api.Fail(w, http.StatusUnauthorized, "identity_unresolvable", "employee identity could not be resolved, please sign in again", requestID)
	case errors.Is(err, appraisal.ErrTaskPastDue),
		errors.Is(err, appraisal.ErrNoteTooShort),
		errors.Is(err, appraisal.ErrNoteTooLong),
		errors.Is(err, appraisal.ErrRatingRequired),
		errors.Is(err, appraisal.ErrProgressRequired),
		errors.Is(err, appraisal.ErrProgressRange):
		api.Fail(w, http.StatusBadRequest, "draft_rejected", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusBadGateway, "pms_unavailable", "task repository unavailable, try again", requestID)
	}
}
