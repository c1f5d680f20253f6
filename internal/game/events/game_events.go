package events

// Event type constants
const (
	TypeMatchStarted     = "match.started"
	TypeMatchEnded       = "match.ended"
	TypeCardPicked       = "card.picked"
	TypePhaseChanged     = "phase.changed"
	TypeTurnAdvanced     = "turn.advanced"
	TypeSelectionIgnored = "selection.ignored"
)

// MatchStartedEvent is published once the opening state is dealt.
type MatchStartedEvent struct {
	BaseEvent
	Players    []string
	MapWidth   int
	MapHeight  int
	Continents int
	MaxTurns   int
}

func NewMatchStartedEvent(matchID string, players []string, width, height, continents, maxTurns int) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:  newBase(TypeMatchStarted, matchID),
		Players:    players,
		MapWidth:   width,
		MapHeight:  height,
		Continents: continents,
		MaxTurns:   maxTurns,
	}
}

// MatchEndedEvent carries the winners and final scores.
type MatchEndedEvent struct {
	BaseEvent
	Winners []int
	Scores  []int
	Turn    int
}

func NewMatchEndedEvent(matchID string, winners, scores []int, turn int) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: newBase(TypeMatchEnded, matchID),
		Winners:   winners,
		Scores:    scores,
		Turn:      turn,
	}
}

// CardPickedEvent is published when a player buys a card from the offer.
type CardPickedEvent struct {
	BaseEvent
	Player   int
	Good     string
	Quantity int
	Cost     int
}

func NewCardPickedEvent(matchID string, player int, good string, quantity, cost int) *CardPickedEvent {
	return &CardPickedEvent{
		BaseEvent: newBase(TypeCardPicked, matchID),
		Player:    player,
		Good:      good,
		Quantity:  quantity,
		Cost:      cost,
	}
}

// PhaseChangedEvent records a move through the phase machine.
type PhaseChangedEvent struct {
	BaseEvent
	From   string
	To     string
	Player int
	Reason string
}

func NewPhaseChangedEvent(matchID, from, to string, player int, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, matchID),
		From:      from,
		To:        to,
		Player:    player,
		Reason:    reason,
	}
}

// TurnAdvancedEvent is published when play passes to another seat.
type TurnAdvancedEvent struct {
	BaseEvent
	Turn   int
	Player int
}

func NewTurnAdvancedEvent(matchID string, turn, player int) *TurnAdvancedEvent {
	return &TurnAdvancedEvent{
		BaseEvent: newBase(TypeTurnAdvanced, matchID),
		Turn:      turn,
		Player:    player,
	}
}

// SelectionIgnoredEvent is published when an input did not change the state.
type SelectionIgnoredEvent struct {
	BaseEvent
	Player    int
	Phase     string
	Selection string
}

func NewSelectionIgnoredEvent(matchID string, player int, phase, selection string) *SelectionIgnoredEvent {
	return &SelectionIgnoredEvent{
		BaseEvent: newBase(TypeSelectionIgnored, matchID),
		Player:    player,
		Phase:     phase,
		Selection: selection,
	}
}
