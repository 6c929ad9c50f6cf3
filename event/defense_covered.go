package event

import "github.com/ratel-online/durak/card"

var DefenseCovered = &defenseCoveredEmitter{}

type DefenseCoveredPayload struct {
	Player  int
	Attack  card.Card
	Defense card.Card
}

type DefenseCoveredListener interface {
	OnDefenseCovered(DefenseCoveredPayload)
}

type defenseCoveredEmitter struct {
	listeners []DefenseCoveredListener
}

func (e *defenseCoveredEmitter) AddListener(listener DefenseCoveredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *defenseCoveredEmitter) Emit(payload DefenseCoveredPayload) {
	for _, listener := range e.listeners {
		listener.OnDefenseCovered(payload)
	}
}
