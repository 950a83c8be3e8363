package mq

import (
	"context"
	"encoding/json"
	"fmt"

	videoredis "VidTube.com/cmd/video/infras/redis"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &Consumer{conn: conn, channel: ch}, nil
}

// StartConsumer 拉起计数同步消费者 点赞数和播放量异步回写MySQL
func StartConsumer(ctx context.Context, rabbitmqURL string) error {
	c, err := NewConsumer(rabbitmqURL)
	if err != nil {
		return err
	}
	if err := c.consume(ctx, LikeEventQueue, c.handleLikeEvent); err != nil {
		return err
	}
	if err := c.consume(ctx, ViewEventQueue, c.handleViewEvent); err != nil {
		return err
	}
	return nil
}

func (c *Consumer) consume(ctx context.Context, queue string, handle func(context.Context, []byte) error) error {
	deliveries, err := c.channel.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handle(ctx, d.Body); err != nil {
					hlog.Errorf("Failed to handle message from %s: %v", queue, err)
					d.Nack(false, false)
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) handleLikeEvent(ctx context.Context, body []byte) error {
	event := &LikeEvent{}
	if err := json.Unmarshal(body, event); err != nil {
		return err
	}
	// 只有视频在表里带冗余计数 评论和推文的计数走redis
	if event.TargetType != constants.LikeTargetVideo {
		return nil
	}
	var delta int64 = 1
	if event.ActionType == "unlike" {
		delta = -1
	}
	return db.AddVideoLikeCount(ctx, event.TargetID, delta)
}

func (c *Consumer) handleViewEvent(ctx context.Context, body []byte) error {
	event := &ViewEvent{}
	if err := json.Unmarshal(body, event); err != nil {
		return err
	}
	if err := db.AddVideoVisitCount(ctx, event.VideoID, 1); err != nil {
		return err
	}
	// 已落库的这次播放从pending里扣掉
	videoredis.DecrPendingVisit(ctx, event.VideoID, 1)
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
