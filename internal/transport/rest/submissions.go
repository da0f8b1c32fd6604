package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/daviidy/transpayra-backend/internal/domain"
	"github.com/daviidy/transpayra-backend/internal/service/submission"
)

// submissionService defines the minimal interface needed by SubmissionHandler.
type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (uuid.UUID, error)
	MigrateAnonymous(ctx context.Context, input submission.MigrateInput) (int, error)
}

// SubmissionHandler serves submission REST endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

// Compensation figures cross the wire as decimal strings ("85000.00") to
// avoid float rounding on either side.
type submitRequest struct {
	Company    string `json:"company"`
	JobTitle   string `json:"jobTitle"`
	Location   string `json:"location"`
	BaseSalary string `json:"baseSalary"`
	Bonus      string `json:"bonus"`
	Stock      string `json:"stock"`
}

type submitResponse struct {
	ID string `json:"id"`
}

type claimRequest struct {
	Token string `json:"token"`
}

type claimResponse struct {
	Migrated int `json:"migrated"`
}

// Submit handles POST /api/v1/submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := toSubmitInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{ID: id.String()})
}

// Claim handles POST /api/v1/submissions/claim: an authenticated user adopts
// the anonymous submissions made under their contributor token.
func (h *SubmissionHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	migrated, err := h.svc.MigrateAnonymous(r.Context(), submission.MigrateInput{Token: req.Token})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, claimResponse{Migrated: migrated})
}

func toSubmitInput(req submitRequest) (submission.SubmitInput, error) {
	var (
		input submission.SubmitInput
		errs  []domain.FieldError
	)

	input.Company = req.Company
	input.JobTitle = req.JobTitle
	input.Location = req.Location

	parse := func(field, raw string, required bool) domain.Money {
		if raw == "" && !required {
			return 0
		}
		m, err := domain.ParseMoney(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "invalid amount"})
			return 0
		}
		return m
	}

	input.BaseSalary = parse("base_salary", req.BaseSalary, true)
	input.Bonus = parse("bonus", req.Bonus, false)
	input.Stock = parse("stock", req.Stock, false)

	if len(errs) > 0 {
		return submission.SubmitInput{}, &domain.ValidationError{Errors: errs}
	}
	return input, nil
}
