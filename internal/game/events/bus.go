package events

import (
	"fmt"

	"github.com/rs/zerolog"
)

type funcHandler struct {
	id      string
	handler EventHandler
}

// EventBus delivers events synchronously, in subscription order, on the
// publisher's goroutine. A panicking handler is logged and skipped.
type EventBus struct {
	subscribers  []Subscriber
	funcHandlers map[string][]funcHandler
	nextFuncID   int
	logger       zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		funcHandlers: make(map[string][]funcHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber, replacing any earlier one with the same ID.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.Unsubscribe(subscriber.ID())
	eb.subscribers = append(eb.subscribers, subscriber)
	eb.logger.Debug().
		Str("subscriber_id", subscriber.ID()).
		Msg("Subscriber added to event bus")
}

func (eb *EventBus) Unsubscribe(subscriberID string) {
	for i, s := range eb.subscribers {
		if s.ID() == subscriberID {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			eb.logger.Debug().
				Str("subscriber_id", subscriberID).
				Msg("Subscriber removed from event bus")
			return
		}
	}
}

// SubscribeFunc adds a function handler for one event type and returns its ID.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.nextFuncID++
	id := fmt.Sprintf("%s_func_%d", eventType, eb.nextFuncID)
	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], funcHandler{id: id, handler: handler})
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", id).
		Msg("Function handler added to event bus")
	return id
}

// UnsubscribeFunc removes a function handler by the ID SubscribeFunc returned.
func (eb *EventBus) UnsubscribeFunc(handlerID string) {
	for eventType, handlers := range eb.funcHandlers {
		for i, h := range handlers {
			if h.id == handlerID {
				eb.funcHandlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				return
			}
		}
	}
}

func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("match_id", event.MatchID()).
		Msg("Publishing event")

	for _, subscriber := range eb.subscribers {
		if subscriber.InterestedIn(eventType) {
			eb.deliver(subscriber.ID(), eventType, func() { subscriber.HandleEvent(event) })
		}
	}
	for _, h := range eb.funcHandlers[eventType] {
		eb.deliver(h.id, eventType, func() { h.handler(event) })
	}
}

func (eb *EventBus) deliver(handlerID, eventType string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("handler_id", handlerID).
				Str("event_type", eventType).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	fn()
}

// SubscriberCount returns the number of object subscribers.
func (eb *EventBus) SubscriberCount() int {
	return len(eb.subscribers)
}

// FuncHandlerCount returns the number of function handlers for an event type.
func (eb *EventBus) FuncHandlerCount(eventType string) int {
	return len(eb.funcHandlers[eventType])
}
