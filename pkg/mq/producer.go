package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var producer *Producer

// InitProducer 连接失败不致命 计数同步退化为只有redis侧的近似值
func InitProducer(rabbitmqURL string) error {
	p, err := NewProducer(rabbitmqURL)
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, count sync disabled: %v", err)
		return err
	}
	producer = p
	return nil
}

func GetProducer() *Producer {
	return producer
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	p := &Producer{conn: conn, channel: ch}
	if err := p.setupTopology(); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}
	return p, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		InteractionEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare interaction event exchange: %w", err)
	}

	for queue, key := range map[string]string{
		LikeEventQueue: likeRoutingKey,
		ViewEventQueue: viewRoutingKey,
	} {
		if _, err := p.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
		if err := p.channel.QueueBind(queue, key, InteractionEventExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, routingKey string, event interface{}) {
	if p == nil || p.channel == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to marshal event: %v", err)
		return
	}
	err = p.channel.PublishWithContext(ctx,
		InteractionEventExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		// 发布失败不影响主流程 点赞行本身已经落库
		hlog.CtxErrorf(ctx, "Failed to publish event: %v", err)
	}
}

func (p *Producer) PublishLikeEvent(ctx context.Context, event *LikeEvent) {
	p.publish(ctx, likeRoutingKey, event)
}

func (p *Producer) PublishViewEvent(ctx context.Context, event *ViewEvent) {
	p.publish(ctx, viewRoutingKey, event)
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
