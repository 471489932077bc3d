package blackjack

import (
	"time"

	"github.com/lox/blackjack/internal/cards"
)

// EventType represents a round event type with type safety
type EventType string

// EventType constants for round events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeCardDealt    EventType = "card_dealt"
	EventTypeRoundEnd     EventType = "round_end"
	EventTypeRoundAbandon EventType = "round_abandon"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a new round begins, before any card is dealt
type RoundStartEvent struct {
	RoundID   string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string) RoundStartEvent {
	return RoundStartEvent{RoundID: roundID, timestamp: time.Now()}
}

// CardDealtEvent is published for every card leaving the deck. It carries
// everything the presentation layer needs to animate the card.
type CardDealtEvent struct {
	RoundID     string
	Participant Role
	Card        cards.Card
	Index       int  // position in the participant's hand
	Hidden      bool // dealer's face-down first card
	From        Anchor
	To          Anchor
	timestamp   time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(roundID string, role Role, card cards.Card, index int, hidden bool, from, to Anchor) CardDealtEvent {
	return CardDealtEvent{
		RoundID:     roundID,
		Participant: role,
		Card:        card,
		Index:       index,
		Hidden:      hidden,
		From:        from,
		To:          to,
		timestamp:   time.Now(),
	}
}

// RoundEndEvent is published when a round resolves
type RoundEndEvent struct {
	RoundID     string
	Winner      Winner
	Reason      Reason
	PlayerTotal int
	DealerTotal int
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(roundID string, winner Winner, reason Reason, playerTotal, dealerTotal int) RoundEndEvent {
	return RoundEndEvent{
		RoundID:     roundID,
		Winner:      winner,
		Reason:      reason,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
		timestamp:   time.Now(),
	}
}

// RoundAbandonEvent is published when a round is discarded before it resolved,
// either by returning to the menu or because the engine aborted it.
type RoundAbandonEvent struct {
	RoundID   string
	Phase     Phase
	timestamp time.Time
}

func (e RoundAbandonEvent) EventType() EventType { return EventTypeRoundAbandon }
func (e RoundAbandonEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundAbandonEvent creates a new round abandon event
func NewRoundAbandonEvent(roundID string, phase Phase) RoundAbandonEvent {
	return RoundAbandonEvent{RoundID: roundID, Phase: phase, timestamp: time.Now()}
}

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
