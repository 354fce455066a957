package observer_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvpatterns/observer"
	"github.com/stretchr/testify/assert"
)

// recorder collects messages under a tag so order can be checked.
type recorder struct {
	tag string
	log *[]string
}

func (r *recorder) Update(m string) { *r.log = append(*r.log, r.tag+":"+m) }

func TestNotify_SubscriptionOrderAndDuplicates(t *testing.T) {
	var log []string
	a := &recorder{tag: "a", log: &log}
	b := &recorder{tag: "b", log: &log}

	s := observer.NewSubject()
	s.Subscribe(b)
	s.Subscribe(a)
	s.Subscribe(b)
	s.Notify("x")

	assert.Equal(t, []string{"b:x", "a:x", "b:x"}, log)
	assert.Equal(t, 3, s.Len())
}

func TestUnsubscribe_RemovesFirstMatchOnly(t *testing.T) {
	var log []string
	a := &recorder{tag: "a", log: &log}
	b := &recorder{tag: "b", log: &log}

	s := observer.NewSubject()
	s.Subscribe(a)
	s.Subscribe(b)
	s.Subscribe(a)

	assert.True(t, s.Unsubscribe(a))
	s.Notify("y")
	assert.Equal(t, []string{"b:y", "a:y"}, log)

	other := &recorder{tag: "a", log: &log}
	assert.False(t, s.Unsubscribe(other), "equal fields but different pointer")
}

func TestUnsubscribe_FuncObserverDoesNotPanic(t *testing.T) {
	s := observer.NewSubject()
	f := observer.ObserverFunc(func(string) {})
	s.Subscribe(f)
	assert.NotPanics(t, func() { assert.False(t, s.Unsubscribe(f)) })
	assert.Equal(t, 1, s.Len())
}

func TestNotify_NoSubscribers(t *testing.T) {
	assert.NotPanics(t, func() { observer.NewSubject().Notify("nobody") })
}

func TestGroup_UnsubscribeRemovesEveryEntry(t *testing.T) {
	var buf bytes.Buffer
	u1, u2 := observer.NewUser(1), observer.NewUser(2)
	g := observer.NewGroup(&buf)
	g.Subscribe(u1)
	g.Subscribe(u2)
	g.Subscribe(u1)

	assert.Equal(t, 2, g.Unsubscribe(u1))
	assert.Equal(t, 0, g.Unsubscribe(u1))
	g.Notify("hi")
	assert.Equal(t, "Message recieved by 2 : hi\n", buf.String())
	assert.Equal(t, 1, g.Len())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	observer.Demo(&buf)
	assert.Equal(t,
		"Sending message via phone :  Kese ho\nSending message via email :  Kese ho\n",
		buf.String())
}
