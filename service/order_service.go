package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"navillera/bracelet"
	"navillera/models"
	"navillera/pricing"
	"navillera/repository"
	"navillera/utils"
)

// OrderService validates checkouts, snapshots bracelets into orders, and hands
// them to the recording and notification collaborators.
type OrderService struct {
	recorder repository.OrderRecorderInterface
	mailer   MailServiceInterface
}

// NewOrderService creates the order service. mailer may be nil-valued but
// disabled; recorder is required.
func NewOrderService(recorder repository.OrderRecorderInterface, mailer MailServiceInterface) *OrderService {
	return &OrderService{recorder: recorder, mailer: mailer}
}

// ValidateCheckout checks that every customer field is filled in. The first
// missing field aborts validation; no collaborator is reached afterwards.
func ValidateCheckout(req models.CheckoutRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"customerName", req.CustomerName},
		{"phoneNumber", req.PhoneNumber},
		{"pickupTime", req.PickupTime},
		{"meetupPlace", req.MeetupPlace},
		{"deliveryDate", req.DeliveryDate},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: missing %s", ErrValidation, f.name)
		}
	}
	return nil
}

// Quote prices a builder session's bracelet against a meetup place.
func Quote(b *bracelet.Bracelet, meetupPlace string) models.QuoteResponse {
	subtotal := b.Subtotal()
	fee := pricing.DeliveryFee(meetupPlace)
	return models.QuoteResponse{
		Lines:       b.Lines(),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

// FromBuilder snapshots a builder session's bracelet into an order. Positions
// are 1-based slot indexes; placeholder slots are omitted.
func FromBuilder(req models.CheckoutRequest, b *bracelet.Bracelet) *models.Order {
	var charms []models.OrderCharm
	for i, s := range b.Slots() {
		if s.Placeholder {
			continue
		}
		charms = append(charms, models.OrderCharm{
			Position: i + 1,
			Filename: s.Entry.Filename,
			Name:     s.Entry.DisplayName,
			Price:    s.Entry.Price,
		})
	}
	subtotal := b.Subtotal()
	fee := pricing.DeliveryFee(req.MeetupPlace)
	return &models.Order{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		PickupTime:   req.PickupTime,
		MeetupPlace:  req.MeetupPlace,
		DeliveryDate: req.DeliveryDate,
		BraceletSize: b.Size(),
		Charms:       charms,
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}

// FromSubmission builds an order from a stateless submission. Prices are
// recomputed from the charm filenames; client-supplied amounts are ignored.
func FromSubmission(sub models.OrderSubmission) (*models.Order, error) {
	if err := ValidateCheckout(sub.CheckoutRequest); err != nil {
		return nil, err
	}
	size := sub.BraceletSize
	if size == 0 {
		size = 20
	}
	if !models.ValidBraceletSize(size) {
		return nil, fmt.Errorf("%w: invalid bracelet size %d", ErrValidation, size)
	}

	var charms []models.OrderCharm
	var subtotal int64
	for _, c := range sub.Charms {
		if c.Filename == "" {
			return nil, fmt.Errorf("%w: charm at position %d has no name", ErrValidation, c.Position)
		}
		price := pricing.Price(c.Filename)
		subtotal += price
		charms = append(charms, models.OrderCharm{
			Position: c.Position,
			Filename: c.Filename,
			Name:     utils.DisplayName(c.Filename),
			Price:    price,
		})
	}

	fee := pricing.DeliveryFee(sub.MeetupPlace)
	return &models.Order{
		CustomerName: sub.CustomerName,
		PhoneNumber:  sub.PhoneNumber,
		PickupTime:   sub.PickupTime,
		MeetupPlace:  sub.MeetupPlace,
		DeliveryDate: sub.DeliveryDate,
		BraceletSize: size,
		Charms:       charms,
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		Timestamp:    time.Now().Format(time.RFC3339),
	}, nil
}

// Submit records the order and fires the notification email. Recording failure
// fails the submission; a mail failure is only logged.
func (s *OrderService) Submit(ctx context.Context, order *models.Order) error {
	if err := s.recorder.Append(ctx, order); err != nil {
		return fmt.Errorf("%w: recording order: %v", ErrCollaborator, err)
	}
	log.Printf("🎉 Order recorded for %s (%s)", order.CustomerName, utils.FormatAED(order.Total))

	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendOrderNotification(order); err != nil {
			log.Printf("❌ Order email failed: %v", err)
		}
	}
	return nil
}
