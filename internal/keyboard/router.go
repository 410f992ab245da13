package keyboard

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler consumes a key press.
type Handler func(msg tea.KeyMsg) tea.Cmd

// Router delivers key presses to the most recent live subscription.
// Overlays subscribe when they open and release when they close, so a
// closed overlay never sees keys.
type Router struct {
	mu     sync.Mutex
	subs   []*subscription
	nextID int
}

type subscription struct {
	id      int
	handler Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Subscribe registers h as the top handler. The returned release func
// removes it and is safe to call more than once.
func (r *Router) Subscribe(h Handler) (release func()) {
	r.mu.Lock()
	r.nextID++
	sub := &subscription{id: r.nextID, handler: h}
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(sub.id) })
	}
}

func (r *Router) remove(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.subs {
		if sub.id == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// Dispatch hands msg to the top subscription. It reports false when no
// subscription is live and the caller should handle the key itself.
func (r *Router) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	r.mu.Lock()
	if len(r.subs) == 0 {
		r.mu.Unlock()
		return nil, false
	}
	top := r.subs[len(r.subs)-1]
	r.mu.Unlock()

	// The handler may release its own subscription; call it unlocked.
	return top.handler(msg), true
}

// Active returns the number of live subscriptions.
func (r *Router) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
