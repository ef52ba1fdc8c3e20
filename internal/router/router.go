package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVehicle(c *ginext.Context)
	GetVehicle(c *ginext.Context)
	ListVehicles(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	RejectReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Vehicles
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.GET("/vehicles/:id", h.GetVehicle)
		api.GET("/vehicles/:id/availability", h.GetAvailability)

		// Reservations
		api.POST("/vehicles/:id/reservations", h.CreateReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
