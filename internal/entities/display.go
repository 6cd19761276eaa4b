package entities

import "time"

type AnnouncementPhase string

const (
	PhaseIdle   AnnouncementPhase = "idle"
	PhaseTeaser AnnouncementPhase = "teaser"
	PhaseCall   AnnouncementPhase = "call"
)

func (p AnnouncementPhase) String() string {
	return string(p)
}

// Announcement - то, что сейчас показано на публичном экране.
type Announcement struct {
	Phase        AnnouncementPhase
	Kind         DispatchEventKind
	Key          string
	CourierName  string
	BagType      string
	TicketNumber string
	Text         string
	StartedAt    time.Time
}

// Phrases - тексты одного объявления: короткий анонс, основной экран и речь.
type Phrases struct {
	Teaser string
	Call   string
	Speech string
}
