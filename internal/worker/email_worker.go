package worker

// Processes welcome-email jobs from QueueEmail. Registration never waits on
// SMTP: a failed send is logged and dropped, the account already exists.

import (
	"context"
	"encoding/json"

	"petmarket/internal/infra"

	"github.com/rs/zerolog/log"
)

// BienvenidaPayload is the job envelope sent to QueueEmail.
type BienvenidaPayload struct {
	Email   string `json:"email"`
	Nombres string `json:"nombres"`
}

// EmailWorker sends welcome emails to newly registered customers.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload BienvenidaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.Email == "" {
		log.Warn().Msg("email_worker: empty email — skipping")
		return
	}

	if err := w.mailer.SendBienvenida(payload.Email, payload.Nombres); err != nil {
		log.Error().Err(err).Str("to", payload.Email).Msg("email_worker: failed to send welcome email")
		return
	}
	log.Info().Str("to", payload.Email).Msg("email_worker: welcome email sent")
}
