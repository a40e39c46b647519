// Package httpapi bundles the storefront's HTTP endpoints.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ventaroai/storefront/internal/app"
	"github.com/ventaroai/storefront/internal/domain/booking"
	"github.com/ventaroai/storefront/internal/domain/contact"
	"github.com/ventaroai/storefront/internal/domain/intake"
	"github.com/ventaroai/storefront/internal/domain/project"
	"github.com/ventaroai/storefront/internal/metrics"
	"github.com/ventaroai/storefront/internal/middleware"
	"github.com/ventaroai/storefront/internal/notify"
	"github.com/ventaroai/storefront/internal/services/catalog"
	"github.com/ventaroai/storefront/internal/storage"
	"github.com/ventaroai/storefront/pkg/logger"
)

// missingFieldsMessage is the only validation detail surfaced to callers.
const missingFieldsMessage = "Missing required fields"

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app      *app.Application
	validate *validator.Validate
	log      *logger.Logger
}

// NewHandler returns a router exposing the storefront REST API.
func NewHandler(application *app.Application, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	h := &handler{
		app:      application,
		validate: validator.New(),
		log:      log,
	}

	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.LoggingMiddleware(log))

	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.getProduct).Methods(http.MethodGet)
	api.HandleFunc("/coaching-booking", h.availableSlots).Methods(http.MethodGet)
	api.HandleFunc("/coaching-booking", h.createBooking).Methods(http.MethodPost)
	api.HandleFunc("/coaching-intake", h.submitIntake).Methods(http.MethodPost)
	api.HandleFunc("/contact", h.submitContact).Methods(http.MethodPost)
	api.HandleFunc("/newsletter", h.subscribeNewsletter).Methods(http.MethodPost)
	api.HandleFunc("/web-gen", h.listProjects).Methods(http.MethodGet)
	api.HandleFunc("/web-gen", h.dispatchProjectAction).Methods(http.MethodPost)

	return r
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ----------------------------------------------------------------------------
// Coaching booking
// ----------------------------------------------------------------------------

func (h *handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var sub booking.Submission
	if err := decodeJSON(r.Body, &sub); err != nil {
		// The original surface treats an unreadable body as a handler
		// failure, not a validation failure.
		writeFailure(w, "Failed to book coaching session")
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	dateTime, err := sub.FormatSessionAt()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date or time")
		return
	}

	customer, operator, err := notify.BookingEmails(sub, dateTime, h.app.AdminEmail, time.Now())
	if err != nil {
		h.log.WithError(err).Error("booking email rendering failed")
		writeFailure(w, "Failed to book coaching session")
		return
	}
	h.app.Notifier.Dispatch(r.Context(), customer, operator)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Coaching session booked successfully",
		"bookingDetails": booking.Details{
			SessionType: sub.SessionType,
			DateTime:    dateTime,
			Timezone:    sub.Timezone,
		},
	})
}

func (h *handler) availableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	slots, err := h.app.Scheduling.SlotsFor(date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Date parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"availableSlots": slots,
		"date":           date,
	})
}

// ----------------------------------------------------------------------------
// Coaching intake
// ----------------------------------------------------------------------------

func (h *handler) submitIntake(w http.ResponseWriter, r *http.Request) {
	var sub intake.Submission
	if err := decodeJSON(r.Body, &sub); err != nil {
		writeFailure(w, "Failed to submit coaching intake form")
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	customer, operator, err := notify.IntakeEmails(sub, h.app.AdminEmail, time.Now())
	if err != nil {
		h.log.WithError(err).Error("intake email rendering failed")
		writeFailure(w, "Failed to submit coaching intake form")
		return
	}
	h.app.Notifier.Dispatch(r.Context(), customer, operator)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Coaching intake form submitted successfully",
	})
}

// ----------------------------------------------------------------------------
// Contact & newsletter
// ----------------------------------------------------------------------------

func (h *handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := decodeJSON(r.Body, &sub); err != nil {
		writeFailure(w, "Failed to send message")
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	customer, operator, err := notify.ContactEmails(sub, h.app.AdminEmail, time.Now())
	if err != nil {
		h.log.WithError(err).Error("contact email rendering failed")
		writeFailure(w, "Failed to send message")
		return
	}
	h.app.Notifier.Dispatch(r.Context(), customer, operator)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}

func (h *handler) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var sub contact.NewsletterSignup
	if err := decodeJSON(r.Body, &sub); err != nil {
		writeFailure(w, "Failed to subscribe")
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage)
		return
	}

	customer, operator, err := notify.NewsletterEmails(sub, h.app.AdminEmail, time.Now())
	if err != nil {
		h.log.WithError(err).Error("newsletter email rendering failed")
		writeFailure(w, "Failed to subscribe")
		return
	}
	h.app.Notifier.Dispatch(r.Context(), customer, operator)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Subscribed successfully",
	})
}

// ----------------------------------------------------------------------------
// Products
// ----------------------------------------------------------------------------

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.app.Catalog.Resolve(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeFailure(w, "Failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.app.Catalog.List(r.Context())
	if err != nil {
		writeFailure(w, "Failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// ----------------------------------------------------------------------------
// Web-gen projects (action dispatch)
// ----------------------------------------------------------------------------

func (h *handler) listProjects(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId parameter is required")
		return
	}

	projects, err := h.app.WebGen.List(r.Context(), userID)
	if err != nil {
		writeFailure(w, "Failed to load projects")
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *handler) dispatchProjectAction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Action    string        `json:"action"`
		Project   project.Draft `json:"project"`
		ProjectID string        `json:"projectId"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	switch payload.Action {
	case "create":
		created, err := h.app.WebGen.Create(r.Context(), payload.Project)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"project": created})

	case "delete":
		if err := h.app.WebGen.Delete(r.Context(), payload.ProjectID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "project not found")
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure reports the generic server-error outcome. Email sub-failures
// never reach here; only unexpected handler failures do.
func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"message": message,
	})
}
