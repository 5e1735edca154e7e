package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tailored-agentic-units/speechgate/request"
)

// Header keys set on every published message.
const (
	HeaderRequestID     = "request_id"
	HeaderAction        = "action"
	HeaderTTS           = "tts"
	HeaderVR            = "vr"
	HeaderLanguageModel = "language_model"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaDispatcher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaDispatcher publishes accepted descriptors as JSON, keyed by request id
// so every message of one request lands on the same partition. Provider
// selections travel as headers; credentials travel only in the body.
type KafkaDispatcher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaDispatcher creates a dispatcher writing to topic on brokers.
func NewKafkaDispatcher(brokers []string, topic string) (*KafkaDispatcher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers cannot be empty")
	}
	if topic == "" {
		return nil, errors.New("kafka topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return NewKafkaDispatcherWithWriter(writer, topic), nil
}

// NewKafkaDispatcherWithWriter creates a dispatcher over an existing writer.
func NewKafkaDispatcherWithWriter(w MessageWriter, topic string) *KafkaDispatcher {
	return &KafkaDispatcher{writer: w, topic: topic}
}

// Topic returns the destination topic.
func (k *KafkaDispatcher) Topic() string {
	return k.topic
}

func (k *KafkaDispatcher) Dispatch(ctx context.Context, d *request.Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}

	msg, err := Message(d)
	if err != nil {
		return err
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s to %s: %w", d.RequestID, k.topic, err)
	}
	return nil
}

// Close flushes pending writes and releases the writer.
func (k *KafkaDispatcher) Close() error {
	if k.writer == nil {
		return nil
	}
	return k.writer.Close()
}

// Message encodes d as the Kafka message published by KafkaDispatcher.
func Message(d *request.Descriptor) (kafka.Message, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s: %w", d.RequestID, err)
	}

	return kafka.Message{
		Key:   []byte(d.RequestID),
		Value: body,
		Headers: []kafka.Header{
			{Key: HeaderRequestID, Value: []byte(d.RequestID)},
			{Key: HeaderAction, Value: []byte(d.Action.String())},
			{Key: HeaderTTS, Value: []byte(d.TTS.String())},
			{Key: HeaderVR, Value: []byte(d.VR.String())},
			{Key: HeaderLanguageModel, Value: []byte(d.LanguageModel.String())},
		},
		Time: time.Now(),
	}, nil
}
