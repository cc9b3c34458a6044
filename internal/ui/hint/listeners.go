package hint

import (
	"bothint/internal/eventbus"
)

// listenerScope owns the input subscriptions held while the list is open.
// Release is idempotent and safe on a scope that was never acquired.
type listenerScope struct {
	release []func()
}

func (s *listenerScope) acquire(bus eventbus.EventBus, onKey, onMouse eventbus.EventHandler) {
	s.releaseAll()
	s.release = []func(){
		bus.Subscribe(eventbus.EventKeyDown, onKey),
		bus.Subscribe(eventbus.EventMouse, onMouse),
	}
}

func (s *listenerScope) releaseAll() {
	for _, unsubscribe := range s.release {
		unsubscribe()
	}
	s.release = nil
}

func (s *listenerScope) held() bool {
	return s.release != nil
}
