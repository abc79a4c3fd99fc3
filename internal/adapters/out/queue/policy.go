// Package queue provides the message bus the workers run on. It wraps a
// watermill router with per-route resilience: exponential retry, a circuit
// breaker, and dead letter queues for messages that are given up on.
package queue

import (
	"time"

	"github.com/sony/gobreaker"
)

// DeadLetterSuffix is appended to a route name to form its dead letter queue.
const DeadLetterSuffix = "-dead-letter"

// DeadLetterTopic returns the dead letter queue name for a route.
func DeadLetterTopic(route string) string {
	return route + DeadLetterSuffix
}

// Policy is the resilience configuration of one route.
type Policy struct {
	// MaxRetries is the number of redeliveries after the first failure.
	MaxRetries int

	// InitialInterval is the delay before the first redelivery. Subsequent
	// delays grow by Multiplier up to MaxInterval.
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64

	// BreakerWindow is the rolling period over which failures are counted.
	BreakerWindow time.Duration

	// BreakerCooldown is how long the route stays suspended once the breaker
	// opens.
	BreakerCooldown time.Duration

	// BreakerMinRequests is the minimum number of deliveries in the window
	// before the failure ratio is considered at all.
	BreakerMinRequests uint32

	// BreakerFailureRatio opens the breaker when failures/requests reaches
	// it, provided BreakerMinRequests was seen.
	BreakerFailureRatio float64
}

// DefaultPolicy returns the policy applied to processing routes.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:      3,
		InitialInterval: 5 * time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      2,

		BreakerWindow:       time.Minute,
		BreakerCooldown:     5 * time.Minute,
		BreakerMinRequests:  10,
		BreakerFailureRatio: 0.15,
	}
}

// NotificationPolicy returns the policy applied to the notification route.
// Notifications are cheap to retry, so the redelivery delay is shorter.
func NotificationPolicy() Policy {
	policy := DefaultPolicy()
	policy.InitialInterval = 2 * time.Second
	return policy
}

func (p Policy) breakerSettings(route string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        route,
		MaxRequests: 1,
		Interval:    p.BreakerWindow,
		Timeout:     p.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < p.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= p.BreakerFailureRatio
		},
	}
}
