package http

import (
	"net/http"

	"ayursutra/internal/delivery/http/handler"
	"ayursutra/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	therapyHandler      *handler.TherapyHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	revenueHandler      *handler.RevenueHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	therapyHandler *handler.TherapyHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	revenueHandler *handler.RevenueHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		therapyHandler:      therapyHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		revenueHandler:      revenueHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login/{role}", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires a valid access token; row-level scoping
	// happens in the usecases via the caller's principal.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patient records
	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)

	// Clinician-only patient management
	staff := api.PathPrefix("/patients").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Therapy catalog (read-only)
	protected.HandleFunc("/therapies", r.therapyHandler.List).Methods(http.MethodGet)

	// Therapist directory for booking forms
	protected.HandleFunc("/therapists", r.authHandler.ListTherapists).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Prescriptions
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.List).Methods(http.MethodGet)

	doctor := api.PathPrefix("/prescriptions").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("", r.prescriptionHandler.Create).Methods(http.MethodPost)

	therapist := api.PathPrefix("/prescriptions").Subrouter()
	therapist.Use(r.authMiddleware.Authenticate)
	therapist.Use(middleware.RequireTherapist)
	therapist.HandleFunc("/{id}", r.prescriptionHandler.Decide).Methods(http.MethodPut)

	// Revenue ledgers
	protected.HandleFunc("/therapist-revenue", r.revenueHandler.TherapistLedger).Methods(http.MethodGet)
	protected.HandleFunc("/doctor-revenue", r.revenueHandler.DoctorLedger).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
