package api

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"github.com/zanovak/katalog/internal/importer"
)

// maxImportSize caps bulk upload files at 10 MB.
const maxImportSize = 10 << 20

// ImportHandler handles the bulk CSV import endpoint.
type ImportHandler struct {
	DB  *sql.DB
	Log *zap.Logger
}

// Import handles POST /api/items/import.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	imported, err := importer.Import(r.Context(), h.DB, file)
	if err != nil {
		h.Log.Error("import failed", zap.Int("imported", imported), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to import items")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "import successful",
		"imported": imported,
	})
}
