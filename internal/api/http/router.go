package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/security"
	"gardenhub-backend/internal/service"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	Entitlements  service.EntitlementService
	Gardens       service.GardenService
	Plots         service.PlotService
	Orders        service.OrderService
	Picks         service.PickService
	Notifications service.NotificationService
	Crops         service.CropService
}

func NewRouter(svcs Services, tokens security.TokenManager, clk clock.Clock) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/activate/{token}", authHandler.Activate).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	gardenHandler := NewGardenHandler(svcs.Gardens)
	protected.HandleFunc("/gardens", gardenHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/gardens/{id}", gardenHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/gardens/{id}", gardenHandler.Update).Methods(http.MethodPut)

	plotHandler := NewPlotHandler(svcs.Plots)
	protected.HandleFunc("/plots", plotHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/plots", plotHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/plots/{id}", plotHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/plots/{id}", plotHandler.Update).Methods(http.MethodPut)

	orderHandler := NewOrderHandler(svcs.Orders, clk)
	protected.HandleFunc("/orders", orderHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{id}", orderHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}/picks", orderHandler.Picks).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}/cancel", orderHandler.Cancel).Methods(http.MethodPost)

	pickerHandler := NewPickerHandler(svcs.Entitlements, svcs.Orders, svcs.Picks)
	protected.HandleFunc("/picker/gardens", pickerHandler.Gardens).Methods(http.MethodGet)
	protected.HandleFunc("/picker/orders", pickerHandler.Orders).Methods(http.MethodGet)
	protected.HandleFunc("/picks", pickerHandler.CreatePick).Methods(http.MethodPost)

	accountHandler := NewAccountHandler(svcs.Users, svcs.Entitlements, svcs.Notifications, svcs.Crops)
	protected.HandleFunc("/account", accountHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/account", accountHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/account/roles", accountHandler.Roles).Methods(http.MethodGet)
	protected.HandleFunc("/account/peers", accountHandler.Peers).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", accountHandler.ListNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", accountHandler.MarkNotificationRead).Methods(http.MethodPost)
	protected.HandleFunc("/crops", accountHandler.ListCrops).Methods(http.MethodGet)

	return router
}
