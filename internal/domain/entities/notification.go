package entities

// NotificationLevel distinguishes toast severities.
type NotificationLevel string

const (
	NotificationInfo  NotificationLevel = "info"
	NotificationError NotificationLevel = "error"
)

// Notification is a short-lived message surfaced to the user.
type Notification struct {
	Level   NotificationLevel
	Message string
}
