package handlers

import (
	"log"
	"net/http"
	"strconv"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"taxOffice/internal/msgs"
	"taxOffice/internal/notifications"
	"taxOffice/internal/services"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	caseService        *services.CaseService
	documentService    *services.DocumentService
	appointmentService *services.AppointmentService
	messageService     *services.MessageService
	presenceService    *services.PresenceService
	notifier           *notifications.Notifier
	hub                *notifications.Hub
}

func NewRestHandler(
	authService *services.AuthenticationService,
	caseService *services.CaseService,
	documentService *services.DocumentService,
	appointmentService *services.AppointmentService,
	messageService *services.MessageService,
	presenceService *services.PresenceService,
	notifier *notifications.Notifier,
	hub *notifications.Hub,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		caseService:        caseService,
		documentService:    documentService,
		appointmentService: appointmentService,
		messageService:     messageService,
		presenceService:    presenceService,
		notifier:           notifier,
		hub:                hub,
	}
}

// Login godoc
// @Summary      Login user to account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// Register godoc
// @Summary      Register a new client account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	err := ctx.BindJSON(&user)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		errors = append(errors, registerErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

func (rh *RestHandler) Profile(ctx *gin.Context) {
	claims := GetClaims(ctx)
	user, err := rh.authService.GetUserById(claims.ID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user.ToProfileResponse(),
	})
}

// SocketToken mints the short-lived credential for the notification
// socket.
func (rh *RestHandler) SocketToken(ctx *gin.Context) {
	claims := GetClaims(ctx)
	tokenResponse, err := rh.authService.CreateSocketToken(claims)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    tokenResponse,
	})
}

func (rh *RestHandler) CreateCase(ctx *gin.Context) {
	claims := GetClaims(ctx)

	var body models.CreateCaseRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	taxCase, caseErrs := rh.caseService.CreateCase(claims.ID, &body)
	if len(caseErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  caseErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCaseCreatedSuccessfully,
		Data:    taxCase,
	})
}

func (rh *RestHandler) GetCases(ctx *gin.Context) {
	claims := GetClaims(ctx)
	cases, caseErrs := rh.caseService.GetCasesForUser(claims.ID, claims.Role)
	if len(caseErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  caseErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    cases,
	})
}

// UpdateCaseStatus is staff-only. After the update commits, the owning
// client and the staff group are both notified; delivery is
// best-effort and never fails the request.
func (rh *RestHandler) UpdateCaseStatus(ctx *gin.Context) {
	caseId, err := parseUintParam(ctx, "id")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidCaseId},
		})
		return
	}

	var body models.UpdateCaseStatusRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	taxCase, caseErrs := rh.caseService.UpdateCaseStatus(caseId, body.Status)
	if len(caseErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  caseErrs,
		})
		return
	}

	rh.notifier.NotifyCaseStatusChange(taxCase.ClientID, taxCase.ID, string(taxCase.Status), taxCase.Client.FullName())

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgCaseStatusUpdated,
		Data:    taxCase,
	})
}

func (rh *RestHandler) UploadDocument(ctx *gin.Context) {
	claims := GetClaims(ctx)

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrFileNotProvided},
		})
		return
	}
	defer file.Close()

	var caseId *uint
	if caseIdStr := ctx.PostForm("case_id"); caseIdStr != "" {
		parsed, err := strconv.ParseUint(caseIdStr, 10, 32)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  []error{errs.ErrInvalidCaseId},
			})
			return
		}
		id := uint(parsed)
		caseId = &id
	}

	document, docErrs := rh.documentService.UploadDocument(
		claims.ID,
		caseId,
		header.Filename,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if len(docErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  docErrs,
		})
		return
	}

	uploaderName := claims.FirstName + " " + claims.LastName
	rh.notifier.NotifyDocumentUploaded(uploaderName, document.FileName, document.TaxCaseID)

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgDocumentUploaded,
		Data:    document,
	})
}

func (rh *RestHandler) GetCaseDocuments(ctx *gin.Context) {
	claims := GetClaims(ctx)

	caseId, err := parseUintParam(ctx, "id")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidCaseId},
		})
		return
	}

	// Clients may only see their own case's documents.
	taxCase, caseErr := rh.caseService.GetCaseById(caseId)
	if caseErr != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{caseErr},
		})
		return
	}
	if !claims.Role.IsStaff() && taxCase.ClientID != claims.ID {
		ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrForbidden},
		})
		return
	}

	documents, docErrs := rh.documentService.GetDocumentsByCaseId(caseId)
	if len(docErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  docErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    documents,
	})
}

func (rh *RestHandler) CreateAppointment(ctx *gin.Context) {
	claims := GetClaims(ctx)

	var body models.CreateAppointmentRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	appointment, appErrs := rh.appointmentService.CreateAppointment(claims.ID, &body)
	if len(appErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  appErrs,
		})
		return
	}

	clientName := claims.FirstName + " " + claims.LastName
	rh.notifier.NotifyAppointmentCreated(claims.ID, clientName, appointment.ScheduledAt, appointment.Service)

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgAppointmentCreated,
		Data:    appointment,
	})
}

func (rh *RestHandler) GetAppointments(ctx *gin.Context) {
	claims := GetClaims(ctx)
	appointments, appErrs := rh.appointmentService.GetAppointmentsForUser(claims.ID, claims.Role)
	if len(appErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  appErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    appointments,
	})
}

// UpdateAppointmentStatus is staff-only (complete or cancel).
func (rh *RestHandler) UpdateAppointmentStatus(ctx *gin.Context) {
	appointmentId, err := parseUintParam(ctx, "id")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	var body models.UpdateCaseStatusRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	status := enums.AppointmentStatus(body.Status)
	if status != enums.APPOINTMENT_STATUS_COMPLETED && status != enums.APPOINTMENT_STATUS_CANCELLED {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidAppointment},
		})
		return
	}

	appointment, appErrs := rh.appointmentService.UpdateAppointmentStatus(appointmentId, status)
	if len(appErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  appErrs,
		})
		return
	}

	rh.notifier.NotifyAppointmentStatusChange(appointment.ClientID, appointment.ID, string(appointment.Status))

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    appointment,
	})
}

// SendMessage saves the direct message, then pushes a best-effort
// real-time preview to the recipient.
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	claims := GetClaims(ctx)

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	if _, err := rh.authService.GetUserById(body.RecipientID); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrRecipientNotFound},
		})
		return
	}

	message, msgErrs := rh.messageService.SendMessage(claims.ID, &body)
	if len(msgErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  msgErrs,
		})
		return
	}

	rh.notifier.NotifyNewMessage(message.SenderID, message.RecipientID, message.Content)

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageSentSuccessfully,
		Data:    message,
	})
}

func (rh *RestHandler) GetConversation(ctx *gin.Context) {
	claims := GetClaims(ctx)

	otherUserId, err := parseUintParam(ctx, "userId")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	messages, msgErrs := rh.messageService.GetConversation(claims.ID, otherUserId)
	if len(msgErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  msgErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

// ConnectionStats exposes hub introspection for the admin dashboard.
func (rh *RestHandler) ConnectionStats(ctx *gin.Context) {
	stats := models.ConnectionStatsResponse{
		ConnectedUsers:   rh.hub.UserCount(),
		TotalConnections: rh.hub.ConnectionCount(),
	}
	if userIdStr := ctx.Query("userId"); userIdStr != "" {
		parsed, err := strconv.ParseUint(userIdStr, 10, 32)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  []error{errs.ErrInvalidParams},
			})
			return
		}
		connected := rh.hub.IsUserConnected(uint(parsed))
		stats.UserConnected = &connected
		if _, lastSeen, err := rh.presenceService.GetOnlineStatus(uint(parsed)); err == nil {
			stats.LastSeen = lastSeen
		}
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    stats,
	})
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errs.ErrInvalidParams
	}
	return uint(value), nil
}
