package entities

// Notification is a transient dashboard toast. Entries auto-dismiss on the
// server side after a few seconds.
type Notification struct {
	Message string `json:"message"`
	Type    string `json:"type"` // "success" or "error"
}
