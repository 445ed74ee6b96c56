package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/mail"
	ucBooking "github.com/studioarcadia/prenota/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelByToken
	mailer         *mail.Mailer
	publicBase     string
	log            *zap.Logger
}

func NewPublicHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelByToken,
	mailer *mail.Mailer,
	publicBase string,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		mailer:         mailer,
		publicBase:     publicBase,
		log:            log,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	result, err := h.availabilityUC.Execute(c.Request.Context(), 0)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Errore nel calcolo delle disponibilità.")
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// PRENOTA
////////////////////////////////////////////////////////

func (h *PublicHandler) Prenota(c *gin.Context) {
	body, err := parseBody(c)
	if err != nil {
		h.sendFragment(c, http.StatusBadRequest,
			"<h1>Dati mancanti</h1><p>Compila tutti i campi obbligatori.</p>")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Nome:     body["nome"],
		Cognome:  body["cognome"],
		Telefono: body["telefono"],
		Email:    body["email"],
		Data:     body["data"],
		Ora:      body["ora"],
		Note:     body["note"],
		Privacy:  consent(body["privacy"]),
		Actor:    ucBooking.ActorPublic,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_fields"):
			h.sendFragment(c, http.StatusBadRequest,
				"<h1>Dati mancanti</h1><p>Compila tutti i campi obbligatori.</p>")
		case httperr.IsBusiness(err, "privacy_required"):
			h.sendFragment(c, http.StatusBadRequest,
				"<h1>Consenso mancante</h1><p>Accetta l'informativa privacy per prenotare.</p>")
		case httperr.IsBusiness(err, "invalid_date"):
			h.sendFragment(c, http.StatusBadRequest,
				"<h1>Data non valida</h1><p>Seleziona una data corretta.</p>")
		case httperr.IsBusiness(err, "date_out_of_range"):
			h.sendFragment(c, http.StatusBadRequest,
				"<h1>Data fuori intervallo</h1><p>Seleziona una data entro 2 mesi.</p>")
		case httperr.IsBusiness(err, "invalid_slot"):
			h.sendFragment(c, http.StatusBadRequest,
				"<h1>Orario non valido</h1><p>Seleziona un orario valido.</p>")
		case httperr.IsBusiness(err, "slot_taken"):
			h.sendFragment(c, http.StatusConflict,
				"<h1>Slot non disponibile</h1><p>Seleziona un altro orario.</p>")
		default:
			h.log.Error("prenota failed", zap.Error(err))
			h.sendFragment(c, http.StatusInternalServerError,
				"<h1>Errore</h1><p>Riprova più tardi.</p>")
		}
		return
	}

	cancelURL := h.cancelURL(c, b.Token)

	emailSent, sendErr := h.mailer.SendConfirmation(c.Request.Context(), b, cancelURL)
	if sendErr != nil {
		h.log.Warn("confirmation email not sent",
			zap.Uint("booking_id", b.ID),
			zap.Error(sendErr),
		)
	}

	emailStatus := "Prenotazione salvata. Configura SMTP per inviare la conferma."
	if emailSent {
		emailStatus = "Conferma inviata via email."
	}

	page := fmt.Sprintf(`<!doctype html>
<html lang="it">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Prenotazione ricevuta</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 40px; background: #f8fafc; color: #0b0f1a; }
      .card { max-width: 520px; margin: 0 auto; background: #fff; padding: 32px; border-radius: 24px; }
      a { color: #0b0f1a; }
    </style>
  </head>
  <body>
    <div class="card">
      <h1>Grazie, %s.</h1>
      <p>La tua richiesta e stata registrata per <strong>%s</strong>.</p>
      <p><strong>%s</strong></p>
      <p>Se devi annullare: <a href="/annulla?token=%s">Annulla prenotazione</a></p>
      <p><a href="/">Torna alla pagina principale</a></p>
    </div>
  </body>
</html>`,
		html.EscapeString(b.FullName()),
		html.EscapeString(b.DataOra()),
		html.EscapeString(emailStatus),
		b.Token,
	)

	h.sendFragment(c, http.StatusOK, page)
}

////////////////////////////////////////////////////////
// ANNULLA
////////////////////////////////////////////////////////

func (h *PublicHandler) Annulla(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		h.sendFragment(c, http.StatusBadRequest,
			"<h1>Token mancante</h1><p>Impossibile annullare.</p>")
		return
	}

	_, alreadyCanceled, err := h.cancelUC.Execute(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, "token_not_found") {
			h.sendFragment(c, http.StatusNotFound,
				"<h1>Token non valido</h1><p>Richiesta non trovata.</p>")
			return
		}

		h.log.Error("annulla failed", zap.Error(err))
		h.sendFragment(c, http.StatusInternalServerError,
			"<h1>Errore</h1><p>Riprova più tardi.</p>")
		return
	}

	if alreadyCanceled {
		h.sendFragment(c, http.StatusOK,
			"<h1>Prenotazione gia annullata</h1><p>Nessuna azione necessaria.</p>")
		return
	}

	h.sendFragment(c, http.StatusOK,
		"<h1>Prenotazione annullata</h1><p>Lo slot e di nuovo disponibile.</p>")
}

////////////////////////////////////////////////////////
// helpers
////////////////////////////////////////////////////////

func (h *PublicHandler) sendFragment(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

func (h *PublicHandler) cancelURL(c *gin.Context, token string) string {
	base := h.publicBase
	if base == "" {
		base = "http://" + c.Request.Host
	}
	return strings.TrimRight(base, "/") + "/annulla?token=" + token
}
