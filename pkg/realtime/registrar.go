package realtime

// Registrar attaches handlers to the table installed by one Subscribe call.
// Handlers registered on a stale Registrar are never invoked.
type Registrar struct {
	ch    *Channel
	table map[Event]func()
}

// On sets the handler for event. A nil fn removes it.
// Only create, update and delete are accepted; other names are ignored.
func (r *Registrar) On(event Event, fn func()) *Registrar {
	if !event.known() {
		return r
	}

	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()

	if fn == nil {
		delete(r.table, event)
	} else {
		r.table[event] = fn
	}
	return r
}

func (r *Registrar) OnCreate(fn func()) *Registrar { return r.On(EventCreate, fn) }

func (r *Registrar) OnUpdate(fn func()) *Registrar { return r.On(EventUpdate, fn) }

func (r *Registrar) OnDelete(fn func()) *Registrar { return r.On(EventDelete, fn) }
