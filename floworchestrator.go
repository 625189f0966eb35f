package navflow

// FlowOrchestrator is a Coordinator that owns at most one active "flow"
// child at a time — an opaque AnyCoordinator representing, e.g., an
// onboarding flow or an authenticated-app flow — and can swap it for a
// different flow (of a possibly unrelated route type) in response to
// CanHandleFlowChange/HandleFlowChange bubbling up from deep within the
// tree.
type FlowOrchestrator[R Route] struct {
	*Coordinator[R]

	currentFlow AnyCoordinator
}

// NewFlowOrchestrator constructs a FlowOrchestrator rooted at root.
func NewFlowOrchestrator[R Route](name string, root R, factory ViewFactory[R], behavior Behavior[R], opts ...Option[R]) *FlowOrchestrator[R] {
	base := NewCoordinator(name, root, factory, behavior, opts...)
	fo := &FlowOrchestrator[R]{Coordinator: base}
	base.self = fo
	return fo
}

// CurrentFlow returns the active flow child, or nil if none has been set.
func (fo *FlowOrchestrator[R]) CurrentFlow() AnyCoordinator { return fo.currentFlow }

// TransitionToFlow detaches the current flow child (if any), attaches
// newFlow in its place, and resets this orchestrator's own root to root,
// clearing stack/modal/detour/pushed-children state left over from the
// previous flow.
func (fo *FlowOrchestrator[R]) TransitionToFlow(newFlow AnyCoordinator, root R) {
	if fo.currentFlow != nil {
		fo.Coordinator.RemoveChild(fo.currentFlow)
	}
	if newFlow != nil {
		_ = fo.Coordinator.AddChild(newFlow)
	}
	fo.currentFlow = newFlow
	fo.Coordinator.TransitionToNewFlow(root)
}
