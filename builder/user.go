// Package builder implements the Builder pattern for a User value.
//
// A Builder starts from the two required fields (id, name), accepts the
// optional ones through chained setters that return the same *Builder, and
// Build snapshots everything into an immutable User. No validation is
// performed; any combination of set and unset optional fields is accepted,
// and a later setter call overwrites an earlier one.
package builder

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Unset is how an absent field is rendered by User.String.
const Unset = "null"

// optional is a string that remembers whether it was assigned.
type optional struct {
	value string
	set   bool
}

func (o optional) String() string {
	if !o.set {
		return Unset
	}
	return o.value
}

// User is the built value. It has no setters.
type User struct {
	id     string
	name   string
	email  optional
	gender optional
}

// ID returns the user id.
func (u User) ID() string { return u.id }

// Name returns the user name.
func (u User) Name() string { return u.name }

// Email returns the email and whether it was set.
func (u User) Email() (string, bool) { return u.email.value, u.email.set }

// Gender returns the gender and whether it was set.
func (u User) Gender() (string, bool) { return u.gender.value, u.gender.set }

// String renders "Id: <id>, Name: <name>, Email: <email>, Gender: <gender>".
func (u User) String() string {
	return "Id: " + u.id + ", Name: " + u.name + ", Email: " + u.email.String() + ", Gender: " + u.gender.String()
}

// Builder accumulates User fields.
type Builder struct {
	u User
}

// NewBuilder starts a user with its required fields.
func NewBuilder(id, name string) *Builder {
	return &Builder{u: User{id: id, name: name}}
}

// Email sets the email and returns b.
func (b *Builder) Email(email string) *Builder {
	b.u.email = optional{value: email, set: true}
	return b
}

// Gender sets the gender and returns b.
func (b *Builder) Gender(gender string) *Builder {
	b.u.gender = optional{value: gender, set: true}
	return b
}

// Build returns a snapshot. Later setter calls on b do not affect it.
func (b *Builder) Build() User {
	return b.u
}

// Demo builds two users with different optional fields and prints them.
func Demo(w io.Writer) {
	u1 := NewBuilder("1", "Deepak").Gender("Male").Build()
	u2 := NewBuilder("1", "Hims").Email("hims@iiitb.ac.in").Gender("Trans").Build()

	console.Println(w, u1)
	console.Println(w, u2)
}
