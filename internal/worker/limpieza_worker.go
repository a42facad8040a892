package worker

// Processes cleanup jobs from QueueLimpieza: stored objects whose deletion
// failed during a catalog write. Each job retries the delete a few times and
// is then dropped — an orphaned image costs cents, a stuck queue costs pages.

import (
	"context"
	"encoding/json"

	"petmarket/internal/storage"

	"github.com/rs/zerolog/log"
)

const maxIntentosLimpieza = 3

// LimpiezaPayload is the job envelope sent to QueueLimpieza.
type LimpiezaPayload struct {
	Path     string `json:"path"`
	Intentos int    `json:"intentos"`
}

// Eliminador is the slice of the storage adapter the cleanup worker needs.
type Eliminador interface {
	Eliminar(ctx context.Context, path string) storage.ResultadoEliminacion
}

// LimpiezaWorker retries deletions of orphaned objects.
type LimpiezaWorker struct {
	almacen    Eliminador
	dispatcher *Dispatcher
}

func NewLimpiezaWorker(almacen Eliminador, dispatcher *Dispatcher) *LimpiezaWorker {
	return &LimpiezaWorker{almacen: almacen, dispatcher: dispatcher}
}

func (w *LimpiezaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload LimpiezaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("limpieza_worker: invalid payload")
		return
	}
	if payload.Path == "" {
		return
	}

	res := w.almacen.Eliminar(ctx, payload.Path)
	if res.Success {
		log.Info().Str("path", payload.Path).Msg("limpieza_worker: orphaned object removed")
		return
	}

	payload.Intentos++
	if payload.Intentos >= maxIntentosLimpieza {
		log.Warn().
			Str("path", payload.Path).
			Int("intentos", payload.Intentos).
			Str("motivo", res.Message).
			Msg("limpieza_worker: giving up on orphaned object")
		return
	}

	if err := w.dispatcher.enqueue(ctx, QueueLimpieza, "limpieza", payload); err != nil {
		log.Error().Err(err).Str("path", payload.Path).Msg("limpieza_worker: failed to requeue")
	}
}
