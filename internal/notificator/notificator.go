package notificator

import (
	"runtime/debug"

	"github.com/sfy-labs/easychain/pkg/logger"
)

// Notificator fans registration and status-change messages out to the
// configured transports. Delivery is best effort; failures are logged and
// never propagated to the caller.
type Notificator struct {
	logger *logger.Logger

	TelegramNotificator *TelegramNotificator
	EmailNotificator    *EmailNotificator
}

func NewNotificator(logger *logger.Logger, telNotif *TelegramNotificator, emailNotif *EmailNotificator) *Notificator {
	return &Notificator{logger: logger, TelegramNotificator: telNotif, EmailNotificator: emailNotif}
}

// safeCall runs a function with panic recovery (synchronous, no goroutine spawning)
func (n *Notificator) safeCall(fn func(), context string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Function panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// NotifyAdmin sends a message to the admin telegram chat, if configured.
func (n *Notificator) NotifyAdmin(message string) {
	if n.TelegramNotificator == nil {
		n.logger.Debug("Telegram transport not configured, dropping admin notification")
		return
	}
	n.safeCall(func() { n.TelegramNotificator.SendToAdminChat(message) }, "adminNotification")
}

// NotifyCompany sends a message to a company contact address, if the email
// transport is configured.
func (n *Notificator) NotifyCompany(email, message string) {
	if n.EmailNotificator == nil || email == "" {
		n.logger.Debug("Email transport not configured, dropping company notification")
		return
	}
	n.safeCall(func() { n.EmailNotificator.SendNotification(email, message) }, "companyNotification")
}
