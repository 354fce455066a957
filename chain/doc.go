// Package chain implements the Chain of Responsibility pattern as a
// severity-routed logger.
//
// Overview:
//
//   - Each Handler owns one fixed severity level and a line prefix.
//   - Handlers are linked into a singly-linked list with SetNext.
//   - Log walks the list until a handler's level matches the request.
//
// Linking:
//
//	h := chain.NewInfoHandler(w).
//	    SetNext(chain.NewErrorHandler(w)).
//	    SetNext(chain.NewDebugHandler(w))
//
// SetNext always returns the receiver, so the expression above keeps h
// pointing at the head (Info). When the receiver already has a successor
// the call is forwarded down the list, which makes every SetNext an append
// at the tail: O(n) per link, no tail pointer is tracked.
//
// Dispatch:
//
//   - level matches          → the handler prints "<Prefix>: <message>".
//   - no match, has next     → the request is forwarded unchanged.
//   - no match, no next      → "Invalid level" is printed exactly once.
//
// An unmatched level therefore reaches the fallback only after the whole
// chain has been traversed.
//
// Complexity:
//
//   - SetNext: O(n) where n is the current chain length.
//   - Log:     O(n) worst case.
package chain
