package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// notifyOrder renders and sends the order email. Failures are logged and
// swallowed: delivery is best-effort and never rolls back the order.
func (s *ordersService) notifyOrder(ctx context.Context, order domain.Order, statusChange bool) {
	buyer, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Failed to load user for order notification", err)
		return
	}

	subject, body := s.renderOrderEmail(ctx, order, buyer.Username, statusChange)
	if subject == "" {
		return
	}

	if err := s.notifRepo.SendEmail(buyer.Username, buyer.Email, subject, body); err != nil {
		logger.Warn("Failed to send order notification", err)
	}
}

func (s *ordersService) renderOrderEmail(ctx context.Context, order domain.Order, username string, statusChange bool) (string, string) {
	var b strings.Builder

	if !statusChange {
		subject := fmt.Sprintf("Order Confirmation #%d", order.ID)

		fmt.Fprintf(&b, "Dear %s,\n\n", username)
		b.WriteString("Thank you for your order! We've received your payment confirmation and are reviewing it.\n\n")
		fmt.Fprintf(&b, "Order #: %d\n", order.ID)
		b.WriteString("Order Details:\n")
		s.writeItemLines(ctx, &b, order.Items)
		fmt.Fprintf(&b, "\nTotal Amount: $%.2f\n", order.TotalAmount)
		fmt.Fprintf(&b, "Payment ID: %s\n\n", order.PaymentID)
		b.WriteString("We'll review your payment confirmation and update you on the status soon.\n")

		return subject, b.String()
	}

	subject := fmt.Sprintf("Order #%d Status Update - %s", order.ID, titleStatus(order.Status))

	switch order.Status {
	case domain.OrderStatusAccepted:
		b.WriteString("Great News! Your Order Has Been Accepted\n\n")
		fmt.Fprintf(&b, "Dear %s,\n\n", username)
		fmt.Fprintf(&b, "Your order #%d has been accepted and is being processed.\n\n", order.ID)
		b.WriteString("Order Details:\n")
		s.writeItemLines(ctx, &b, order.Items)
		fmt.Fprintf(&b, "\nTotal Amount: $%.2f\n\n", order.TotalAmount)
		b.WriteString("You should receive your digital goods shortly. If you have any questions, please contact our support team.\n\n")
		b.WriteString("Thank you for your business!\n")
	case domain.OrderStatusRejected:
		b.WriteString("Order Update Required\n\n")
		fmt.Fprintf(&b, "Dear %s,\n\n", username)
		fmt.Fprintf(&b, "Unfortunately, your order #%d requires attention.\n", order.ID)
		b.WriteString("Please check your payment confirmation and contact our support team if you need assistance.\n\n")
		fmt.Fprintf(&b, "Order Total: $%.2f\n", order.TotalAmount)
		fmt.Fprintf(&b, "Payment ID: %s\n", order.PaymentID)
	default:
		return "", ""
	}

	return subject, b.String()
}

func (s *ordersService) writeItemLines(ctx context.Context, b *strings.Builder, items []domain.OrderItem) {
	for _, item := range items {
		name := fmt.Sprintf("Product #%d", item.ProductID)
		if product, err := s.productRepo.FindByID(ctx, item.ProductID); err == nil {
			name = product.Name
		}

		fmt.Fprintf(b, "- %s x %d - $%.2f", name, item.Quantity, item.Price*float64(item.Quantity))
		if item.CustomInputValue != "" {
			fmt.Fprintf(b, " (Input: %s)", item.CustomInputValue)
		}
		b.WriteString("\n")
	}
}

func titleStatus(status string) string {
	if status == "" {
		return status
	}

	return strings.ToUpper(status[:1]) + status[1:]
}
