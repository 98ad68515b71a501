package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"wempy-orders/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, msg domain.OrderEvent) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.OrderID)),
		Value: payload,
	})
}
