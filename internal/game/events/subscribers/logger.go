package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Continents/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the full event payload.
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID())

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent.
			Strs("players", e.Players).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight).
			Int("continents", e.Continents).
			Int("max_turns", e.MaxTurns)

	case *events.MatchEndedEvent:
		logEvent.
			Ints("winners", e.Winners).
			Ints("scores", e.Scores).
			Int("final_turn", e.Turn)

	case *events.CardPickedEvent:
		logEvent.
			Int("player", e.Player).
			Str("good", e.Good).
			Int("quantity", e.Quantity).
			Int("cost", e.Cost)

	case *events.PhaseChangedEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Int("player", e.Player).
			Str("reason", e.Reason)

	case *events.TurnAdvancedEvent:
		logEvent.
			Int("turn", e.Turn).
			Int("player", e.Player)

	case *events.SelectionIgnoredEvent:
		logEvent.
			Int("player", e.Player).
			Str("phase", e.Phase).
			Str("selection", e.Selection)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Match event")
}
