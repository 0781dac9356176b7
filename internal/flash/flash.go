// Package flash carries a one-shot notice across a POST/redirect/GET cycle.
//
// Actions such as "generate report" redirect back to the page they were
// triggered from; the outcome travels in a short lived cookie and is shown
// once on the next page view.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

const cookieName = "seo_flash"

// Kind selects how a notice is styled.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Message is a notice shown at the top of a page.
type Message struct {
	Kind Kind   `json:"k"`
	Text string `json:"m"`
}

// Empty reports whether there is nothing to show.
func (m Message) Empty() bool {
	return m.Text == ""
}

// Set stores msg for the next request.
func Set(w http.ResponseWriter, msg Message) {
	if msg.Empty() {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) Message {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return Message{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Message{}
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}
	}
	return msg
}

// Redirect stores msg and redirects to target with 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, target string, msg Message) {
	Set(w, msg)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
