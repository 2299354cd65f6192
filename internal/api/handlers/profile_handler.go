package handlers

import (
	"net/http"

	"github.com/sTrAy74/swi-web/internal/gateway"
)

// Cap multipart memory; file parts beyond this spill to disk.
const maxProfileUploadMemory = 10 << 20

// profileFileFields are the form fields forwarded as file uploads
var profileFileFields = []string{"logo", "cover_photo", "certifications", "portfolio_images"}

// ProfileHandler proxies profile reads and updates to the gateway
type ProfileHandler struct {
	gw *gateway.Client
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(gw *gateway.Client) *ProfileHandler {
	return &ProfileHandler{gw: gw}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	s := requireSession(w, r)
	if s == nil {
		return
	}

	profile, err := h.gw.GetProfile(gateway.WithSession(r.Context(), s))
	if err != nil {
		respondGatewayError(w, err, "Failed to load profile")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PATCH /api/profile. The request is multipart so
// text fields and image uploads travel together, mirroring the upstream
// endpoint's contract.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s := requireSession(w, r)
	if s == nil {
		return
	}

	if err := r.ParseMultipartForm(maxProfileUploadMemory); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	fields := map[string]string{}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	var files []gateway.FileUpload
	for _, field := range profileFileFields {
		for _, header := range r.MultipartForm.File[field] {
			file, err := header.Open()
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "unreadable upload: "+field)
				return
			}
			defer file.Close()
			files = append(files, gateway.FileUpload{
				Field:   field,
				Name:    header.Filename,
				Content: file,
			})
		}
	}

	profile, err := h.gw.UpdateProfile(gateway.WithSession(r.Context(), s), fields, files)
	if err != nil {
		respondGatewayError(w, err, "Failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}
