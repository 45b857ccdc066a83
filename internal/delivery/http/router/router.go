// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HouseholdHandler    *handler.HouseholdHandler
	DashboardHandler    *handler.DashboardHandler
	RentHandler         *handler.RentHandler
	BillHandler         *handler.BillHandler
	ChoreHandler        *handler.ChoreHandler
	SensorHandler       *handler.SensorHandler
	NudgeHandler        *handler.NudgeHandler
	ChatHandler         *handler.ChatHandler
	NotificationHandler *handler.NotificationHandler
	CoachHandler        *handler.CoachHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Probes and metrics stay unauthenticated
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(r.params.AuthMiddleware.Authenticate)

	households := api.Group("/households")
	{
		households.POST("", r.params.HouseholdHandler.CreateHousehold)
		households.GET("/:id", r.params.HouseholdHandler.GetHousehold)
		households.PUT("/:id", r.params.HouseholdHandler.UpdateHousehold)
		households.DELETE("/:id", r.params.HouseholdHandler.DeleteHousehold)

		// Per-household sub-resources, listed from the household's perspective
		households.GET("/:id/dashboard", r.params.DashboardHandler.GetDashboard)
		households.GET("/:id/rent", r.params.RentHandler.ListRentPayments)
		households.GET("/:id/bills", r.params.BillHandler.ListBills)
		households.GET("/:id/chores", r.params.ChoreHandler.ListChores)
		households.GET("/:id/completions", r.params.ChoreHandler.ListChoreCompletions)
		households.GET("/:id/sensors", r.params.SensorHandler.ListSensors)
		households.GET("/:id/nudges", r.params.NudgeHandler.ListNudges)
		households.GET("/:id/messages", r.params.ChatHandler.ListChatMessages)
		households.POST("/:id/messages", r.params.ChatHandler.SendChatMessage)
		households.GET("/:id/notifications", r.params.NotificationHandler.ListNotifications)
		households.GET("/:id/coach", r.params.CoachHandler.ListCoachSessions)
		households.POST("/:id/coach", r.params.CoachHandler.StartCoachSession)
	}

	rent := api.Group("/rent")
	{
		rent.POST("", r.params.RentHandler.CreateRentPayment)
		rent.POST("/:id/pay", r.params.RentHandler.MarkRentPaymentPaid)
		rent.DELETE("/:id", r.params.RentHandler.DeleteRentPayment)
	}

	bills := api.Group("/bills")
	{
		bills.POST("", r.params.BillHandler.CreateBill)
		bills.POST("/:id/pay", r.params.BillHandler.MarkBillPaid)
		bills.DELETE("/:id", r.params.BillHandler.DeleteBill)
	}

	chores := api.Group("/chores")
	{
		chores.POST("", r.params.ChoreHandler.CreateChore)
		chores.POST("/:id/complete", r.params.ChoreHandler.CompleteChore)
		chores.POST("/:id/assign", r.params.ChoreHandler.AssignChore)
		chores.DELETE("/:id", r.params.ChoreHandler.DeleteChore)
	}

	sensors := api.Group("/sensors")
	{
		sensors.POST("", r.params.SensorHandler.CreateSensor)
		sensors.POST("/:id/readings", r.params.SensorHandler.RecordReading)
		sensors.PUT("/:id/active", r.params.SensorHandler.SetActive)
		sensors.DELETE("/:id", r.params.SensorHandler.DeleteSensor)
	}

	nudges := api.Group("/nudges")
	{
		nudges.POST("", r.params.NudgeHandler.CreateNudge)
		nudges.POST("/:id/read", r.params.NudgeHandler.MarkNudgeRead)
		nudges.POST("/:id/dismiss", r.params.NudgeHandler.DismissNudge)
		nudges.DELETE("/:id", r.params.NudgeHandler.DeleteNudge)
	}

	messages := api.Group("/messages")
	{
		messages.PUT("/:id", r.params.ChatHandler.EditChatMessage)
		messages.DELETE("/:id", r.params.ChatHandler.DeleteChatMessage)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("/:id/read", r.params.NotificationHandler.MarkNotificationRead)
		notifications.DELETE("/:id", r.params.NotificationHandler.DeleteNotification)
	}

	coach := api.Group("/coach")
	{
		coach.PUT("/:id/status", r.params.CoachHandler.UpdateCoachSessionStatus)
	}
}
