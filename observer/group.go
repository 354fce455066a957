package observer

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// User is a group member identified by ID. IDs need not be unique;
// membership is by pointer.
type User struct {
	ID int
}

// NewUser returns a *User with the given id.
func NewUser(id int) *User { return &User{ID: id} }

// Group prints a receipt for each member when notified.
type Group struct {
	users []*User
	out   io.Writer
}

// NewGroup returns an empty Group printing to w (nil → stdout).
func NewGroup(w io.Writer) *Group {
	return &Group{out: w}
}

// Subscribe appends u.
func (g *Group) Subscribe(u *User) {
	g.users = append(g.users, u)
}

// Unsubscribe removes every entry pointing at u and returns how many went.
func (g *Group) Unsubscribe(u *User) int {
	kept := g.users[:0]
	for _, cur := range g.users {
		if cur != u {
			kept = append(kept, cur)
		}
	}
	removed := len(g.users) - len(kept)
	for i := len(kept); i < len(g.users); i++ {
		g.users[i] = nil
	}
	g.users = kept

	return removed
}

// Notify prints "Message recieved by <id> : <message>" per member, in order.
func (g *Group) Notify(message string) {
	for _, u := range g.users {
		console.Printf(g.out, "Message recieved by %d : %s", u.ID, message)
	}
}

// Len reports the number of memberships.
func (g *Group) Len() int { return len(g.users) }

// GroupDemo notifies three members (two sharing id 2), drops the first and
// notifies again.
func GroupDemo(w io.Writer) {
	u1, u2, u3 := NewUser(1), NewUser(2), NewUser(2)
	g := NewGroup(w)
	g.Subscribe(u1)
	g.Subscribe(u2)
	g.Subscribe(u3)
	g.Notify("NEW MESSAGE")
	g.Unsubscribe(u1)
	g.Notify("BYE")
}
