// Package observer implements the Observer pattern in two shapes.
//
//   - Subject keeps an ordered list of Observer values and calls Update on
//     each of them, synchronously and in subscription order, on Notify.
//     Duplicates are allowed; Unsubscribe removes the first entry equal to
//     the given observer.
//   - Group keeps an ordered list of *User and prints one receipt line per
//     member on Notify. Unsubscribe removes every entry pointing at the
//     given user.
//
// Neither type is safe for concurrent use.
package observer
