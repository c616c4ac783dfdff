package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
)

const maxNotificationSize = 1 << 20

// Notify receives paynow status notifications. The gateway always gets an
// acknowledgement; failures are only logged and the status reconciler picks
// up anything that was missed.
func (h *Handlers) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxNotificationSize))
	if err != nil {
		h.logger.Warn("failed to read paynow notification", "error", err)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	err = h.orchestrator.HandleNotification(r.Context(), bytes.TrimSpace(body), r.Header.Get("Signature"))
	if err != nil {
		category := application.CategorizeError(err)
		if category == application.CategoryClientError || category == application.CategoryBusinessRule {
			h.logger.Warn("paynow notification not applied",
				"code", application.ToErrorCode(err),
				"error", err,
			)
		} else {
			h.logger.Error("paynow notification failed",
				"code", application.ToErrorCode(err),
				"category", category,
				"error", err,
			)
		}
	}

	w.WriteHeader(http.StatusAccepted)
}
