// Package navflow implements a hierarchical, coordinator-based UI
// navigation engine: a reactive state machine that owns a tree of
// coordinators, each holding a router over a navigation state (root,
// push stack, selected tab, presented modal, presented detour, pushed
// child coordinators, modal detent configuration).
//
// Embedders request navigation to a typed route via Coordinator.Navigate.
// The engine runs a side-effect-free validation pass across the
// reachable subtree; on success it runs the same decision tree again as
// an execution pass, mutating routers and publishing state changes. The
// view layer (not part of this package) observes router state and
// renders it; navflow never touches pixels.
package navflow
