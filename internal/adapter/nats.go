package adapter

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsConn is the part of a NATS connection the publisher and bridge own
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,JetStream=MockJetStream,Consumer=MockNatsConsumer,ConsumeContext=MockConsumeContext,Message=MockJetStreamMessage,NatsJetStream=MockNatsJetStream
type NatsConn interface {
	Close()
}

// JetStream covers publishing ledger events and consuming them back
type JetStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) error
	CreateOrUpdateConsumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error)
}

type MessageHandler func(msg Message)

// Consumer is a durable or ephemeral pull consumer on the event stream
type Consumer interface {
	Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error)
	Info(ctx context.Context) (*jetstream.ConsumerInfo, error)
}

type ConsumeContext interface {
	Stop()
}

// Message is a single delivery of an event, settled with exactly one of Ack, Nak or Term
type Message interface {
	Data() []byte
	Metadata() (*jetstream.MsgMetadata, error)
	Ack() error
	Nak() error
	Term() error
}

// NatsJetStream dials NATS and opens a JetStream context on the connection
type NatsJetStream interface {
	Connect(url string, options ...nats.Option) (NatsConn, JetStream, error)
}

type natsDialer struct{}

// NewNatsJetStream creates a dialer for real NATS servers
func NewNatsJetStream() NatsJetStream {
	return natsDialer{}
}

func (natsDialer) Connect(url string, options ...nats.Option) (NatsConn, JetStream, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return nc, &streamClient{js: js}, nil
}

// streamClient narrows jetstream.JetStream so consumers come back as Consumer
type streamClient struct {
	js jetstream.JetStream
}

func (s *streamClient) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return s.js.Publish(ctx, subject, data, opts...)
}

func (s *streamClient) CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) error {
	_, err := s.js.CreateOrUpdateStream(ctx, cfg)
	return err
}

func (s *streamClient) CreateOrUpdateConsumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error) {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, stream, cfg)
	if err != nil {
		return nil, err
	}
	return pullConsumer{consumer}, nil
}

type pullConsumer struct {
	jetstream.Consumer
}

func (c pullConsumer) Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error) {
	return c.Consumer.Consume(func(msg jetstream.Msg) {
		handler(msg)
	}, opts...)
}
