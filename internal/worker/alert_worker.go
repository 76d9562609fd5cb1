package worker

// alert_worker.go
// Processes low-stock alert jobs: when an inventory mutation leaves a part
// below its reorder threshold, the shop address gets a heads-up email.

import (
	"context"
	"encoding/json"
	"fmt"

	"partsdesk/internal/infra"

	"github.com/rs/zerolog/log"
)

// LowStockAlertPayload is the job envelope sent to QueueLowStock.
type LowStockAlertPayload struct {
	GSMNumber     string `json:"gsm_number"`
	Category      string `json:"category"`
	StockQuantity int    `json:"stock_quantity"`
	MinimumStock  int    `json:"minimum_stock"`
}

// AlertWorker sends reorder notifications via SMTP.
type AlertWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertWorker(mailer *infra.Mailer, to string) *AlertWorker {
	return &AlertWorker{mailer: mailer, to: to}
}

// Process emails the configured shop address. Skips silently when SMTP or
// the recipient is not configured.
func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return
	}
	if !w.mailer.Enabled() || w.to == "" {
		log.Debug().Str("gsm", payload.GSMNumber).Msg("alert_worker: mail not configured — skipping")
		return
	}

	subject := fmt.Sprintf("Low stock: %s", payload.GSMNumber)
	body := fmt.Sprintf(
		"Part %s (%s) is down to %d units — reorder threshold is %d.\n",
		payload.GSMNumber, payload.Category, payload.StockQuantity, payload.MinimumStock,
	)
	if err := w.mailer.Send(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("gsm", payload.GSMNumber).Msg("alert_worker: failed to send email")
		return
	}
	log.Info().Str("gsm", payload.GSMNumber).Msg("alert_worker: reorder alert sent")
}
