package event

import "github.com/ratel-online/durak/card"

var TrumpRevealed = &trumpRevealedEmitter{}

type TrumpRevealedPayload struct {
	Card     card.Card
	Attacker int
}

type TrumpRevealedListener interface {
	OnTrumpRevealed(TrumpRevealedPayload)
}

type trumpRevealedEmitter struct {
	listeners []TrumpRevealedListener
}

func (e *trumpRevealedEmitter) AddListener(listener TrumpRevealedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *trumpRevealedEmitter) Emit(payload TrumpRevealedPayload) {
	for _, listener := range e.listeners {
		listener.OnTrumpRevealed(payload)
	}
}
