package models

// NotificationService delivers best-effort messages about registration and
// status changes. Delivery failures are logged, never propagated.
type NotificationService interface {
	// NotifyAdmin sends a message to the configured admin channel.
	NotifyAdmin(message string)
	// NotifyCompany sends a message to a company contact address.
	NotifyCompany(email, message string)
}
