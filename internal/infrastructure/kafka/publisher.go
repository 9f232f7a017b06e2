package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func (k *KafkaPublisher) PublishSellerOrder(event SellerOrderEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.ChannelID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
