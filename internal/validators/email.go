package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks address syntax only. Deliverability is not our
// problem; the form just needs to reject obvious typos.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts display names ("A <a@b.c>"); forms submit
	// bare addresses only.
	if addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
