package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediticket/internal/application/ticket/usecases"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
	"mediticket/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	answerTicketUC       usecases.AnswerTicketExecutor
	uploadAttachmentUC   usecases.UploadAttachmentExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	markReadUC           usecases.MarkReadExecutor
	annotateUC           usecases.AnnotateTicketExecutor
	exportUC             usecases.ExportTicketsExecutor
	dashboardUC          usecases.DashboardExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	answerTicketUC usecases.AnswerTicketExecutor,
	uploadAttachmentUC usecases.UploadAttachmentExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
	markReadUC usecases.MarkReadExecutor,
	annotateUC usecases.AnnotateTicketExecutor,
	exportUC usecases.ExportTicketsExecutor,
	dashboardUC usecases.DashboardExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		answerTicketUC:       answerTicketUC,
		uploadAttachmentUC:   uploadAttachmentUC,
		downloadAttachmentUC: downloadAttachmentUC,
		markReadUC:           markReadUC,
		annotateUC:           annotateUC,
		exportUC:             exportUC,
		dashboardUC:          dashboardUC,
		logger:               logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets/nieuw
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket aangemaakt")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets/
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUnanswered handles GET /tickets/onbeantwoord
func (h *TicketHandler) ListUnanswered(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		OnlyUnanswered: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListByUser handles GET /tickets/gebruiker/:user_id
func (h *TicketHandler) ListByUser(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AnswerTicket handles POST /tickets/antwoord
func (h *TicketHandler) AnswerTicket(c *gin.Context) {
	var req AnswerTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for answer ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.answerTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Antwoord verzonden")
}

// UploadAttachment handles POST /tickets/:id/upload
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("bestand")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("bestand is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	result, err := h.uploadAttachmentUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		TicketID:    c.Param("id"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Bijlage opgeslagen")
}

// DownloadAttachment handles GET /tickets/:id/bijlagen/:bijlage_id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	result, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		TicketID:     c.Param("id"),
		AttachmentID: c.Param("bijlage_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(result.StoredPath, result.Filename)
}

// MarkRead handles POST /tickets/:id/gelezen
func (h *TicketHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		TicketID: c.Param("id"),
		Read:     *req.Read,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Annotate handles POST /tickets/:id/annotatie
func (h *TicketHandler) Annotate(c *gin.Context) {
	var req AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.annotateUC.Execute(c.Request.Context(), usecases.AnnotateTicketCommand{
		TicketID:   c.Param("id"),
		Annotation: req.Annotation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Export handles GET /tickets/export
func (h *TicketHandler) Export(c *gin.Context) {
	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", result.Content)
}

// Dashboard handles GET /tickets/dashboard
func (h *TicketHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
