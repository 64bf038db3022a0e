// Package observe provides at-most-once visibility subscriptions and the
// frame-driven counter animation used by reveal effects.
package observe

// Subscription is interest in one target's first visibility.
type Subscription struct {
	target    string
	fn        func(target string)
	observer  *Observer
	delivered bool
	cancelled bool
}

// Cancel drops the subscription without delivering it.
func (s *Subscription) Cancel() {
	if s.cancelled || s.delivered {
		return
	}
	s.cancelled = true
	s.observer.drop(s)
}

// Delivered reports whether the callback has run.
func (s *Subscription) Delivered() bool { return s.delivered }

// Target is the observed element id.
func (s *Subscription) Target() string { return s.target }

// Observer routes visibility events to subscriptions and forgets each one
// after its first delivery.
type Observer struct {
	subs map[string][]*Subscription
}

// NewObserver returns an empty observer.
func NewObserver() *Observer {
	return &Observer{subs: make(map[string][]*Subscription)}
}

// Observe registers fn to run the first time target becomes visible.
func (o *Observer) Observe(target string, fn func(target string)) *Subscription {
	s := &Subscription{target: target, fn: fn, observer: o}
	o.subs[target] = append(o.subs[target], s)
	return s
}

// Intersect reports that target became visible. Pending subscriptions are
// delivered and removed; it returns how many callbacks ran.
func (o *Observer) Intersect(target string) int {
	pending := o.subs[target]
	if len(pending) == 0 {
		return 0
	}
	delete(o.subs, target)
	for _, s := range pending {
		s.delivered = true
		if s.fn != nil {
			s.fn(target)
		}
	}
	return len(pending)
}

// Pending reports how many subscriptions wait on target.
func (o *Observer) Pending(target string) int { return len(o.subs[target]) }

func (o *Observer) drop(s *Subscription) {
	list := o.subs[s.target]
	for i, existing := range list {
		if existing == s {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(o.subs, s.target)
		return
	}
	o.subs[s.target] = list
}
