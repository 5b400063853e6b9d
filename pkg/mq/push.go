package mq

import (
	"context"
	"errors"

	"github.com/limbo/accountability/pkg/entity"
)

const RoutingKeyNudgePush = "nudge.push"

// PushPublisher hands push notifications to the delivery workers through the events exchange.
type PushPublisher struct {
	pub *Publisher
}

func NewPushPublisher(pub *Publisher) *PushPublisher {
	return &PushPublisher{
		pub: pub,
	}
}

func (pp *PushPublisher) SendPush(ctx context.Context, n entity.PushNotification) error {
	if n.Token == "" {
		return errors.New("push token is empty")
	}
	return pp.pub.Publish(ctx, RoutingKeyNudgePush, n)
}
