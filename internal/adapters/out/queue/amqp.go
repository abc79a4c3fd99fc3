package queue

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/v2/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NewAmqpPublisher connects a publisher to RabbitMQ with durable queues, so
// messages survive broker restarts.
func NewAmqpPublisher(uri string, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return amqp.NewPublisher(amqp.NewDurableQueueConfig(uri), logger)
}

// NewAmqpSubscriber connects a subscriber to RabbitMQ with durable queues.
func NewAmqpSubscriber(uri string, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	return amqp.NewSubscriber(amqp.NewDurableQueueConfig(uri), logger)
}
