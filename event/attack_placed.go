package event

import "github.com/ratel-online/durak/card"

var AttackPlaced = &attackPlacedEmitter{}

type AttackPlacedPayload struct {
	Player int
	Card   card.Card
}

type AttackPlacedListener interface {
	OnAttackPlaced(AttackPlacedPayload)
}

type attackPlacedEmitter struct {
	listeners []AttackPlacedListener
}

func (e *attackPlacedEmitter) AddListener(listener AttackPlacedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *attackPlacedEmitter) Emit(payload AttackPlacedPayload) {
	for _, listener := range e.listeners {
		listener.OnAttackPlaced(payload)
	}
}
