// Package lvpatterns is a collection of small, independent demonstrations
// of the classic object-oriented design patterns, written as idiomatic Go.
//
// Every pattern lives in its own package and shares nothing with the
// others:
//
//	abstractfactory/ — GUI widget families picked by name, default on unknown
//	adapter/         — JSON source adapted to an XML-only processor
//	bridge/          — shapes drawn through an interchangeable Drawable
//	builder/         — chained setters producing an immutable User
//	chain/           — severity-routed logger built as a linked list
//	command/         — TV remote with a history stack and re-run undo
//	composite/       — file system tree printed in pre-order
//	decorator/       — coffee cost/description layers + function composition
//	flyweight/       — forest of trees sharing cached TreeTypes
//	observer/        — subject/observer and a group of users
//	state/           — three-state media player
//
// Each package exposes Demo(w io.Writer), which replays a fixed
// demonstration sequence and writes its lines to w (nil means stdout).
// The exact wording of those lines is stable and covered by tests.
//
// cmd/patterns runs any selection of demos from the command line:
//
//	go run ./cmd/patterns -list
//	go run ./cmd/patterns chain state
package lvpatterns
