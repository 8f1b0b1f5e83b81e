package service

import "navillera/models"

// MailServiceInterface defines the order notification sender.
type MailServiceInterface interface {
	Enabled() bool
	SendOrderNotification(order *models.Order) error
}

var _ MailServiceInterface = (*MailService)(nil)
