// Package ui contains the Bubble Tea program for the bar inventory screen.
// Model focuses on message orchestration; dedicated files own product entry,
// the tabs & wells menu, filter input, prompts and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a name form or a yes/no confirmation is open, key presses go to
//     it first. Everything else is routed through a typed handler registry
//     so each tea.Msg is handled by a focused function.
//   - Key presses on the inventory screen edit the product name (with
//     suggestions) and then the quantity; in the menu they move through the
//     stack of levels built from menu.Registry (navigation.go) and edit the
//     level filter (input.go).
//
// State ownership:
//   - The tab tree and the selection live in inventory.Session. The model
//     only reads snapshots and calls Session methods on the update loop.
//   - Menu actions run as tea.Cmd values through the command bus. The
//     mutations they request come back as menu.Request messages and are
//     applied by command.Bus.Apply in handleRequestMsg.
//   - List state (cursor, filter, viewport) lives in internal/ui/state.Level
//     for both the menu levels and the product list.
//
// The catalog is fetched once by a command returned from Init; until it
// arrives suggestions come from the product names of the current tab.
package ui
