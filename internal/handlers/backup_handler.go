package handlers

import (
	"bytes"
	"net/http"

	"github.com/rajdesai17/finplay/internal/service"
)

// BackupHandler serves backup exports over HTTP. Restores go through the
// backup CLI, not the API.
type BackupHandler struct {
	backup *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backup *service.BackupService) *BackupHandler {
	return &BackupHandler{backup: backup}
}

// Export handles GET /api/backup
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	// Buffer the document so a failed export does not leak a partial body
	var buf bytes.Buffer
	if err := h.backup.ExportToWriter(&buf); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export backup", "Backup export failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="finplay-backup.json"`)
	w.Write(buf.Bytes())
}
