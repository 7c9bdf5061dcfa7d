package models

// Session is an opaque token record resolved on every request.
// An empty UserID marks an anonymous session: those still carry
// flash messages and a CSRF token. Expiry is the redis TTL.
type Session struct {
	ID        string
	UserID    string
	CSRFToken string
}

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
