package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReceiptHandler books received goods into the stock ledger.
type ReceiptHandler interface {
	MergeAdd(ctx context.Context, req *model.MergeAddRequest) (*model.MergeAddResponse, error)
}

// Consumer reads goods-receipt messages from the receiving system.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler ReceiptHandler
}

type action int

const (
	actionAck action = iota
	actionReject
	actionRequeue
)

func NewConsumer(host string, port int, user, password string, handler ReceiptHandler) (*Consumer, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		constant.StockReceiptQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// Run consumes until ctx is done or the channel is closed by the broker.
func (c *Consumer) Run(ctx context.Context) error {
	// one receipt at a time keeps lock contention on hot locations low
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		constant.StockReceiptQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("stock receipt channel closed")
			}
			switch handleReceipt(ctx, c.handler, msg.Body) {
			case actionAck:
				_ = msg.Ack(false)
			case actionReject:
				_ = msg.Nack(false, false)
			case actionRequeue:
				_ = msg.Nack(false, true)
			}
		}
	}
}

func handleReceipt(ctx context.Context, handler ReceiptHandler, body []byte) action {
	var req model.MergeAddRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("[StockReceipt] invalid payload", zap.String("error", err.Error()))
		return actionReject
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		logger.Warn("[StockReceipt] invalid receipt", zap.Strings("fields", validatorx.Messages(err)))
		return actionReject
	}

	res, err := handler.MergeAdd(ctx, &req)
	if err != nil {
		var ce cerr.CustomError
		if errors.As(err, &ce) && ce.Type() != constant.ErrInternal && ce.Type() != constant.ErrConflict {
			logger.Warn("[StockReceipt] receipt refused", zap.String("product_name", req.ProductName), zap.String("error", err.Error()))
			return actionReject
		}
		logger.Error("[StockReceipt] merge add failed", zap.String("error", err.Error()))
		return actionRequeue
	}

	logger.Info("[StockReceipt] booked",
		zap.String("product_code", res.ProductCode),
		zap.String("warehouse", res.Warehouse),
		zap.String("location", res.Location),
		zap.Int("pcs", res.Pcs))
	return actionAck
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
