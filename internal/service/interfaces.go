package service

import (
	"context"

	"wempy-orders/internal/domain"
)

type OrderServiceInterface interface {
	SubmitOrder(ctx context.Context, order *domain.OrderRequest) (orderID int, filePath string, err error)
	ReprintOrder(ctx context.Context, orderID int) error
}

type CounterStore interface {
	NextOrderID(ctx context.Context) (int, error)
}

type ReceiptRenderer interface {
	Render(order *domain.OrderRequest, orderID int, path string) error
}

type PrintDispatcher interface {
	Dispatch(ctx context.Context, path string) error
}

type OrderArchive interface {
	SaveOrder(ctx context.Context, orderID int, order *domain.OrderRequest) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, msg domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
