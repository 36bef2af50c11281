package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"tabletalk/internal/security"
)

// ShareHandler serves a QR code pointing a second device at the game
type ShareHandler struct {
	baseURL string
}

// NewShareHandler creates a new share handler
func NewShareHandler(baseURL string) *ShareHandler {
	return &ShareHandler{baseURL: baseURL}
}

const qrSize = 320 // mobile-friendly size

// QR generates a PNG QR code for the game URL. A resume token may be
// appended via ?token= so the scanned link restores a player seat.
func (h *ShareHandler) QR(w http.ResponseWriter, r *http.Request) {
	url := h.baseURL
	if url == "" {
		scheme := "http"
		if security.IsSecureRequest(r) {
			scheme = "https"
		}
		url = scheme + "://" + r.Host
	}

	if token := r.URL.Query().Get("token"); token != "" {
		url += "/api/game/resume?token=" + token
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "qr generation failed", "", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
