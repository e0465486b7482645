package sim

// EventKind identifies something that happened during a substep.
type EventKind uint8

const (
	EventReset EventKind = iota
	EventJump
	EventLand
	EventCoin
	EventStomp
	EventDeath
	EventWin
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventCoin:
		return "coin"
	case EventStomp:
		return "stomp"
	case EventDeath:
		return "death"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause says why the player died.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseHazard
	CauseEnemy
	CauseFall
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseHazard:
		return "hazard"
	case CauseEnemy:
		return "enemy"
	case CauseFall:
		return "fall"
	default:
		return "none"
	}
}

// Event is emitted by the controllers and drained by the host.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Cause DeathCause // EventDeath only
	Index int        // coin or enemy index, -1 otherwise
	X, Y  float64    // player position when the event fired
}

// maxPendingEvents bounds the queue when no host drains it.
const maxPendingEvents = 256

func (s *Session) emit(kind EventKind, cause DeathCause, index int) {
	if len(s.events) >= maxPendingEvents {
		s.events = append(s.events[:0], s.events[1:]...)
	}
	s.events = append(s.events, Event{
		Kind:  kind,
		Tick:  s.tick,
		Cause: cause,
		Index: index,
		X:     s.Player.X,
		Y:     s.Player.Y,
	})
}

// DrainEvents returns and clears the events emitted since the last drain.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
