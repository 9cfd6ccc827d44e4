package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// clientID returns the id from the client cookie when it holds a valid UUID.
func (h *Handler) clientID(r *http.Request) (string, bool) {
	c, err := r.Cookie(h.cookieName)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// ensureClientID returns the existing client id or issues a new one.
func (h *Handler) ensureClientID(w http.ResponseWriter, r *http.Request) string {
	id, ok := h.clientID(r)
	if !ok {
		id = uuid.NewString()
	}
	// Refreshed on every report so active clients keep their id.
	h.setClientCookie(w, id, h.cookieTTL)
	return id
}

func (h *Handler) setClientCookie(w http.ResponseWriter, id string, ttl time.Duration) {
	c := &http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		c.MaxAge = int(ttl.Seconds())
		c.Expires = time.Now().Add(ttl)
	} else if ttl < 0 {
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
	}
	http.SetCookie(w, c)
}
