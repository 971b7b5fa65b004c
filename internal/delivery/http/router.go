package http

import (
	"net/http"

	"salon-booking/internal/delivery/http/handler"
	"salon-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	workShiftHandler     *handler.WorkShiftHandler
	reviewHandler        *handler.ReviewHandler
	dashboardHandler     *handler.DashboardHandler
	catalogHandler       *handler.CatalogHandler
	contactHandler       *handler.ContactHandler
	favoriteHandler      *handler.FavoriteHandler
	reminderHandler      *handler.ReminderHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestLogMiddleware *middleware.RequestLogMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	workShiftHandler *handler.WorkShiftHandler,
	reviewHandler *handler.ReviewHandler,
	dashboardHandler *handler.DashboardHandler,
	catalogHandler *handler.CatalogHandler,
	contactHandler *handler.ContactHandler,
	favoriteHandler *handler.FavoriteHandler,
	reminderHandler *handler.ReminderHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogMiddleware *middleware.RequestLogMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		workShiftHandler:     workShiftHandler,
		reviewHandler:        reviewHandler,
		dashboardHandler:     dashboardHandler,
		catalogHandler:       catalogHandler,
		contactHandler:       contactHandler,
		favoriteHandler:      favoriteHandler,
		reminderHandler:      reminderHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		requestLogMiddleware: requestLogMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Preflight requests only need the CORS headers.
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", r.authHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.catalogHandler.GetService).Methods(http.MethodGet)
	api.HandleFunc("/staff", r.catalogHandler.ListStaff).Methods(http.MethodGet)
	api.HandleFunc("/reviews", r.reviewHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/contacts", r.contactHandler.Create).Methods(http.MethodPost)

	// Any logged-in user
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/auth/me", r.authHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/auth/me", r.authHandler.UpdateMe).Methods(http.MethodPut)
	protected.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/mine", r.appointmentHandler.Mine).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPut)
	protected.HandleFunc("/reviews", r.reviewHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/shifts", r.workShiftHandler.ListShifts).Methods(http.MethodGet)
	protected.HandleFunc("/favorites", r.favoriteHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/favorites", r.favoriteHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/favorites/toggle", r.favoriteHandler.Toggle).Methods(http.MethodPost)
	protected.HandleFunc("/favorites/{id}", r.favoriteHandler.Remove).Methods(http.MethodDelete)

	// Salon employees
	employee := api.PathPrefix("").Subrouter()
	employee.Use(r.authMiddleware.Authenticate)
	employee.Use(middleware.RequireAdminOrStaff)
	employee.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPut)
	employee.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPut)
	employee.HandleFunc("/workshifts", r.workShiftHandler.ListRegistrations).Methods(http.MethodGet)
	employee.HandleFunc("/workshifts/{id}/cancel", r.workShiftHandler.Cancel).Methods(http.MethodPut)

	// Staff only
	staff := api.PathPrefix("/workshifts").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/register", r.workShiftHandler.Register).Methods(http.MethodPost)
	staff.HandleFunc("/registered", r.workShiftHandler.Registered).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/dashboard", r.dashboardHandler.Summary).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/reminders", r.reminderHandler.Send).Methods(http.MethodPost)

	// Shift management (admin)
	admin.HandleFunc("/shifts", r.workShiftHandler.CreateShift).Methods(http.MethodPost)
	admin.HandleFunc("/shifts/{id}", r.workShiftHandler.DeleteShift).Methods(http.MethodDelete)
	admin.HandleFunc("/workshifts", r.workShiftHandler.Assign).Methods(http.MethodPost)
	admin.HandleFunc("/workshifts/{id}/approve", r.workShiftHandler.Approve).Methods(http.MethodPut)
	admin.HandleFunc("/workshifts/{id}/reject", r.workShiftHandler.Reject).Methods(http.MethodPut)

	// Catalog management (admin)
	admin.HandleFunc("/services", r.catalogHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.catalogHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.catalogHandler.DeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/customers", r.catalogHandler.ListCustomers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.catalogHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.catalogHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}", r.catalogHandler.UpdateStaff).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", r.catalogHandler.DeleteStaff).Methods(http.MethodDelete)

	// Contact inbox (admin)
	admin.HandleFunc("/contacts", r.contactHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{id}", r.contactHandler.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/contacts/{id}", r.contactHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.requestLogMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
