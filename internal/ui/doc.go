// Package ui contains the Bubble Tea program that powers the category
// admin panel. The package is structured so the Model type focuses on
// message orchestration, while dedicated helpers own the bootstrap
// sequence, navigation, search input, rendering, and write flows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, resize,
//     loader results, write results, location events). Messages with no
//     handler fall through to the focused text input so cursor blinking
//     keeps working.
//   - Key presses dispatch by mode: the category form and the delete
//     confirmation prompt consume keys while active; otherwise keys drive
//     the list (cursor movement, search text, panel actions).
//
// State ownership:
//   - The session user and category collection live in internal/store.
//   - List state (rows, search filter, cursor, viewport) lives in
//     internal/ui/state.List. The visible rows are always the filtered,
//     order-index-sorted projection of the collection, rebuilt whenever
//     either input changes.
//   - Asynchronous API calls run via tea.Cmd values built in commands.go.
//     Every command captures the session epoch at start; the epoch
//     increments when the resolved chat identifier changes, and handlers
//     drop results carrying a stale epoch.
//
// Identity:
//   - An identity.Watcher feeds location changes into the loop. When a
//     change resolves to a different chat identifier the model begins a
//     fresh session (bootstrap refetch); otherwise the event is ignored.
package ui
