package observer

import "io"

// Subject publishes messages to its subscribers.
type Subject struct {
	observers []Observer
}

// NewSubject returns a Subject with no subscribers.
func NewSubject() *Subject {
	return &Subject{}
}

// Subscribe appends o. Subscribing the same observer twice delivers twice.
func (s *Subject) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Unsubscribe removes the first subscription equal to o and reports whether
// one was found. Comparable observers (pointers) match by identity.
func (s *Subject) Unsubscribe(o Observer) bool {
	for i, cur := range s.observers {
		if sameObserver(cur, o) {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return true
		}
	}

	return false
}

// Notify calls Update(message) on every subscriber in subscription order.
func (s *Subject) Notify(message string) {
	for _, o := range s.observers {
		o.Update(message)
	}
}

// Len reports the number of subscriptions.
func (s *Subject) Len() int { return len(s.observers) }

// sameObserver compares a and b without panicking on non-comparable
// dynamic types such as ObserverFunc.
func sameObserver(a, b Observer) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}

// Demo subscribes a phone and an email observer and publishes one message.
func Demo(w io.Writer) {
	email := NewEmailObserver(w)
	phone := NewPhoneObserver(w)
	news := NewSubject()
	news.Subscribe(phone)
	news.Subscribe(email)
	news.Notify("Kese ho")
}
