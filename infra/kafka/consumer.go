package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"crux/domain/book"
)

var errUnknownSide = errors.New("unknown side")

// OrderSink is where consumed orders go. Satisfied by service.Engine.
type OrderSink interface {
	PlaceOrder(side book.Side, symbol string, qty int64, price float64) (uint64, error)
}

// orderMessage is the wire format on the orders topic.
type orderMessage struct {
	Side   string  `json:"side"`
	Symbol string  `json:"symbol"`
	Qty    int64   `json:"qty"`
	Price  float64 `json:"price"`
}

// decodeOrder parses one message off the orders topic. The side field
// must say buy or sell; anything else is a malformed message, not a
// default.
func decodeOrder(value []byte) (book.Side, orderMessage, error) {
	var m orderMessage
	if err := json.Unmarshal(value, &m); err != nil {
		return 0, m, err
	}
	switch {
	case strings.EqualFold(m.Side, "buy"):
		return book.Buy, m, nil
	case strings.EqualFold(m.Side, "sell"):
		return book.Sell, m, nil
	}
	return 0, m, fmt.Errorf("%w %q", errUnknownSide, m.Side)
}

// Consumer ingests orders from a Kafka topic into the engine. It is an
// external collaborator: the core never knows orders arrived this way.
type Consumer struct {
	group sarama.ConsumerGroup
	topic string
	sink  OrderSink
	log   *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, sink OrderSink, log *zap.Logger) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{group: group, topic: topic, sink: sink, log: log}, nil
}

// Run consumes until ctx is cancelled. Rebalances re-enter Consume, so
// it loops.
func (c *Consumer) Run(ctx context.Context) error {
	handler := &groupHandler{c: c}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			c.log.Warn("consumer group session ended", zap.Error(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	c *Consumer
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		side, m, err := decodeOrder(msg.Value)
		if err != nil {
			h.c.log.Warn("dropping malformed order message",
				zap.Int64("offset", msg.Offset), zap.Error(err))
			sess.MarkMessage(msg, "")
			continue
		}

		if _, err := h.c.sink.PlaceOrder(side, m.Symbol, m.Qty, m.Price); err != nil {
			// Validation failures are terminal for the message, not the claim.
			h.c.log.Warn("order rejected",
				zap.String("symbol", m.Symbol), zap.Error(err))
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
