package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/studioarcadia/prenota/internal/config"
	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/httpresp"
	"github.com/studioarcadia/prenota/internal/middleware"
	"github.com/studioarcadia/prenota/internal/sessions"
	ucBooking "github.com/studioarcadia/prenota/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	cfg   *config.Config
	store sessions.Store

	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelByID
	deleteUC *ucBooking.DeleteBooking
	updateUC *ucBooking.UpdateBooking
	listUC   *ucBooking.ListBookings

	log *zap.Logger
}

func NewAdminHandler(
	cfg *config.Config,
	store sessions.Store,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelByID,
	deleteUC *ucBooking.DeleteBooking,
	updateUC *ucBooking.UpdateBooking,
	listUC *ucBooking.ListBookings,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		store:    store,
		createUC: createUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
		updateUC: updateUC,
		listUC:   listUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateRequest struct {
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
	Data     string `json:"data"`
	Ora      string `json:"ora"`
	Note     string `json:"note"`
}

type AdminIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

type AdminUpdateRequest struct {
	ID       uint  `json:"id" binding:"required"`
	Attended *bool `json:"attended"`
	Paid     *bool `json:"paid"`
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (h *AdminHandler) Login(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Credenziali mancanti.")
		return
	}

	username := strings.TrimSpace(body["username"])
	password := body["password"]

	if !h.credentialsMatch(username, password) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenziali non valide.")
		return
	}

	token := uuid.NewString()
	if err := h.store.Put(c.Request.Context(), token); err != nil {
		h.log.Error("session store failed", zap.Error(err))
		httperr.Internal(c, "session_failed", "Impossibile creare la sessione.")
		return
	}

	maxAge := int((time.Duration(h.cfg.SessionTTLMin) * time.Minute).Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.store.Delete(c.Request.Context(), token); err != nil {
			h.log.Warn("session delete failed", zap.Error(err))
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AdminHandler) credentialsMatch(username, password string) bool {
	if h.cfg.AdminUser == "" || h.cfg.AdminPass == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUser)) != 1 {
		return false
	}

	// ADMIN_PASS may hold either the plain password or a bcrypt hash.
	if strings.HasPrefix(h.cfg.AdminPass, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPass), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPass)) == 1
}

// ======================================================
// BOOKINGS CRUD
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Errore nel caricamento delle prenotazioni.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req AdminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Nome:     req.Nome,
		Cognome:  req.Cognome,
		Telefono: req.Telefono,
		Email:    req.Email,
		Data:     req.Data,
		Ora:      req.Ora,
		Note:     req.Note,
		Actor:    ucBooking.ActorAdmin,
	})
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *AdminHandler) Cancel(c *gin.Context) {
	var req AdminIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), req.ID)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	var req AdminIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), req.ID); err != nil {
		h.mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AdminHandler) Update(c *gin.Context) {
	var req AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, thankYouSent, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		ID:       req.ID,
		Attended: req.Attended,
		Paid:     req.Paid,
	})
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"booking":        b,
		"thank_you_sent": thankYouSent,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *AdminHandler) mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Compila tutti i campi obbligatori.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data non valida.")
	case httperr.IsBusiness(err, "date_out_of_range"):
		httperr.BadRequest(c, "date_out_of_range", "Data fuori intervallo.")
	case httperr.IsBusiness(err, "invalid_slot"):
		httperr.BadRequest(c, "invalid_slot", "Orario non valido.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Slot non disponibile.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Prenotazione non trovata.")
	default:
		h.log.Error("admin booking operation failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Errore interno.")
	}
}
