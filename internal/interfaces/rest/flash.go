package rest

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const FlashCookieName = "paynow_flash"

type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashNotice  FlashType = "notice"
	FlashError   FlashType = "error"
)

// Flash is a one-shot message shown by the storefront after a redirect.
type Flash struct {
	Type    FlashType `json:"type"`
	Message string    `json:"message"`
}

func SetFlash(w http.ResponseWriter, flashType FlashType, message string) {
	payload, err := json.Marshal(Flash{Type: flashType, Message: message})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadFlash decodes the flash cookie of a request. A missing or corrupt
// cookie yields false.
func ReadFlash(r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return Flash{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}, false
	}

	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil || flash.Message == "" {
		return Flash{}, false
	}
	return flash, true
}

// ClearFlash expires the flash cookie once the storefront has shown it.
func ClearFlash(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   FlashCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
