package model

// NotificationField is a titled section within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic digest message for downstream
// notifiers.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
}
