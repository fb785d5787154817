package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/whitemassif/website/internal/api/middleware"
	"github.com/whitemassif/website/internal/api/response"
	"github.com/whitemassif/website/internal/audit"
	"github.com/whitemassif/website/internal/form"
)

const maxFormBody = 1 << 20

// Submitter validates and stores a form submission.
type Submitter interface {
	Submit(ctx context.Context, body form.Fields, meta form.Metadata) (*form.Result, error)
}

// EventRecorder appends a submission to the audit log.
type EventRecorder interface {
	Record(ctx context.Context, e audit.Event)
}

type formSuccess struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      any    `json:"id"`
}

type formError struct {
	Error string `json:"error"`
}

// FormHandler handles the public form submission endpoint.
type FormHandler struct {
	forms    Submitter
	recorder EventRecorder
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(forms Submitter, recorder EventRecorder) *FormHandler {
	return &FormHandler{forms: forms, recorder: recorder}
}

// Submit handles POST /api/submit-form.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	meta := form.MetadataFromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body form.Fields
	if err := dec.Decode(&body); err != nil || body == nil {
		h.respond(w, r, audit.Event{RequestID: requestID, ClientIP: meta.ClientIP},
			http.StatusBadRequest, formError{Error: "Request body must be valid JSON"})
		return
	}

	event := audit.Event{RequestID: requestID, ClientIP: meta.ClientIP}
	if t, err := form.ParseType(body); err == nil {
		event.FormType = string(t)
		event.Collection = form.Rules[t].Collection
	}

	res, err := h.forms.Submit(r.Context(), body, meta)
	if err != nil {
		status, msg := submitError(err)
		if status >= http.StatusInternalServerError {
			slog.Error("form submission failed", "error", err, "requestId", requestID, "formType", event.FormType)
		}
		h.respond(w, r, event, status, formError{Error: msg})
		return
	}

	if res.ID != nil {
		id := fmt.Sprint(res.ID)
		event.CMSID = &id
	}
	h.respond(w, r, event, http.StatusOK, formSuccess{
		Success: true,
		Message: "Form submitted successfully",
		ID:      res.ID,
	})
}

// MethodNotAllowed answers every non-POST method on the submission route.
func (h *FormHandler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	response.Write(w, http.StatusMethodNotAllowed, formError{Error: "Method not allowed. Use POST to submit forms."})
}

func (h *FormHandler) respond(w http.ResponseWriter, r *http.Request, e audit.Event, status int, body any) {
	e.HTTPStatus = status
	switch {
	case status == http.StatusOK:
		e.Outcome = audit.OutcomeStored
	case status >= http.StatusInternalServerError:
		e.Outcome = audit.OutcomeFailed
	default:
		e.Outcome = audit.OutcomeRejected
	}
	h.recorder.Record(r.Context(), e)
	response.Write(w, status, body)
}

func submitError(err error) (int, string) {
	var missing *form.MissingFieldError
	switch {
	case errors.Is(err, form.ErrMissingFormType):
		return http.StatusBadRequest, "Form type is required"
	case errors.Is(err, form.ErrInvalidFormType):
		return http.StatusBadRequest, "Invalid form type"
	case errors.Is(err, form.ErrEmailRequired):
		return http.StatusBadRequest, "Email is required"
	case errors.Is(err, form.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email address"
	case errors.As(err, &missing):
		return http.StatusBadRequest, missing.Field + " is required"
	case errors.Is(err, form.ErrAlreadySubscribed):
		return http.StatusConflict, "Email already subscribed"
	case errors.Is(err, form.ErrStore):
		return http.StatusInternalServerError, "Database error. Please try again later."
	}
	return http.StatusInternalServerError, "An unexpected error occurred"
}
