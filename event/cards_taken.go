package event

import "github.com/ratel-online/durak/card"

var CardsTaken = &cardsTakenEmitter{}

type CardsTakenPayload struct {
	Player int
	Cards  []card.Card
}

type CardsTakenListener interface {
	OnCardsTaken(CardsTakenPayload)
}

type cardsTakenEmitter struct {
	listeners []CardsTakenListener
}

func (e *cardsTakenEmitter) AddListener(listener CardsTakenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsTakenEmitter) Emit(payload CardsTakenPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsTaken(payload)
	}
}
