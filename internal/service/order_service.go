package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"wempy-orders/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("no document exists for this order")
	ErrInvalidOrder  = errors.New("invalid order payload")
)

// OrderService runs the submission pipeline: assign a number, render the
// receipt, archive, send to printer, publish the event. Archive and publisher
// may be nil when the corresponding backend is not configured.
type OrderService struct {
	counter   CounterStore
	renderer  ReceiptRenderer
	printer   PrintDispatcher
	archive   OrderArchive
	publisher OrderPublisher
	ordersDir string
}

func NewOrderService(counter CounterStore, renderer ReceiptRenderer, printer PrintDispatcher, archive OrderArchive, publisher OrderPublisher, ordersDir string) *OrderService {
	return &OrderService{
		counter:   counter,
		renderer:  renderer,
		printer:   printer,
		archive:   archive,
		publisher: publisher,
		ordersDir: ordersDir,
	}
}

// ReceiptPath derives the document location from the order number. Reprints
// rely on this path being stable, so the scheme must never change between
// submission and reprint.
func (s *OrderService) ReceiptPath(orderID int) string {
	return filepath.Join(s.ordersDir, fmt.Sprintf("wempy_order_%d.html", orderID))
}

func (s *OrderService) SubmitOrder(ctx context.Context, order *domain.OrderRequest) (int, string, error) {
	if err := validateOrder(order); err != nil {
		return 0, "", err
	}

	orderID, err := s.counter.NextOrderID(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("failed to assign order number: %w", err)
	}

	path := s.ReceiptPath(orderID)
	if err := s.renderer.Render(order, orderID, path); err != nil {
		return 0, "", fmt.Errorf("failed to render order %d: %w", orderID, err)
	}

	if s.archive != nil {
		if err := s.archive.SaveOrder(ctx, orderID, order); err != nil {
			log.Printf("Warning: failed to archive order %d: %v", orderID, err)
		}
	}

	if err := s.printer.Dispatch(ctx, path); err != nil {
		return 0, "", fmt.Errorf("failed to print order %d: %w", orderID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrderSubmitted,
			OrderID:   orderID,
			Total:     order.Totals.Total,
			FilePath:  path,
			Timestamp: time.Now(),
		}); err != nil {
			log.Printf("Warning: failed to publish event for order %d: %v", orderID, err)
		}
	}

	log.Printf("Order %d rendered to %s and sent to printer", orderID, path)
	return orderID, path, nil
}

func (s *OrderService) ReprintOrder(ctx context.Context, orderID int) error {
	path := s.ReceiptPath(orderID)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to check order document: %w", err)
	}
	return s.printer.Dispatch(ctx, path)
}

// validateOrder rejects structurally broken payloads. Totals consistency is
// deliberately not checked against the item lines.
func validateOrder(order *domain.OrderRequest) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	for _, item := range order.Items {
		if item.Qty <= 0 {
			return fmt.Errorf("%w: item %q has non-positive quantity", ErrInvalidOrder, item.Name)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrInvalidOrder, item.Name)
		}
	}
	if order.Totals.Subtotal < 0 || order.Totals.Delivery < 0 || order.Totals.Total < 0 {
		return fmt.Errorf("%w: totals must be non-negative", ErrInvalidOrder)
	}
	return nil
}
