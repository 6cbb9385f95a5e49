package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "mediticket/internal/interfaces/http/handlers/ticket"
	"mediticket/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	staff := config.AuthMiddleware.RequireStaff()

	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: register specific paths BEFORE parameterized paths
		// to avoid route conflicts.

		// Patient-facing routes carry no auth. Listing by user is also
		// open; any caller that knows a user id can read that user's
		// tickets.
		tickets.POST("/nieuw", config.TicketHandler.CreateTicket)
		tickets.POST("/:id/upload", config.TicketHandler.UploadAttachment)
		tickets.GET("/gebruiker/:user_id", config.TicketHandler.ListByUser)

		// Staff routes.
		tickets.GET("/", staff, config.TicketHandler.ListTickets)
		tickets.GET("/onbeantwoord", staff, config.TicketHandler.ListUnanswered)
		tickets.GET("/export", staff, config.TicketHandler.Export)
		tickets.GET("/dashboard", staff, config.TicketHandler.Dashboard)
		tickets.POST("/antwoord", staff, config.TicketHandler.AnswerTicket)
		tickets.POST("/:id/gelezen", staff, config.TicketHandler.MarkRead)
		tickets.POST("/:id/annotatie", staff, config.TicketHandler.Annotate)
		tickets.GET("/:id/bijlagen/:bijlage_id", staff, config.TicketHandler.DownloadAttachment)

		// Generic parameterized route last.
		tickets.GET("/:id", staff, config.TicketHandler.GetTicket)
	}
}
