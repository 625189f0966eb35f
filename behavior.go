package navflow

// Behavior is implemented by embedders to customize how a coordinator
// answers questions about its own route type R. Coordinator never calls
// these methods itself for a route whose concrete type does not match R
// — CanHandle and friends are only invoked once the engine has already
// established route.(R) succeeds, except CanHandleFlowChange and
// HandleFlowChange, which take the type-erased Route since flow
// orchestrators may need to restructure around a route of a completely
// different type than their own.
type Behavior[R Route] interface {
	// CanHandle reports whether this coordinator claims route. Must be
	// pure: no mutation, safe to call repeatedly during validation.
	CanHandle(route R) bool

	// NavigationType says how a claimed route should be presented.
	NavigationType(route R) NavigationType

	// NavigationPath declares prerequisite routes to push/replace before
	// reaching route, when navigating to it from an empty stack. Entries
	// must each resolve to NavigationType Push or Replace; anything else
	// is a configuration error caught at runtime.
	NavigationPath(route R) []R

	// CanHandleFlowChange is asked of a parentless coordinator when
	// bubbling reaches it with no handler anywhere in the tree.
	CanHandleFlowChange(route Route) bool

	// HandleFlowChange performs the flow swap declared possible by
	// CanHandleFlowChange, returning whether it succeeded.
	HandleFlowChange(route Route) bool

	// ShouldCleanStateForBubbling is asked before bubbling route to the
	// parent; true dismisses this coordinator's active modal first.
	ShouldCleanStateForBubbling(route R) bool

	// ShouldDismissModalFor is consulted when the active modal handled
	// route but is no longer presented; true dismisses it. A modal that
	// fails to handle route is always dismissed so the parent can
	// continue, whatever this returns.
	ShouldDismissModalFor(route R) bool

	// ModalDetentConfiguration supplies the detent configuration to store
	// when route is presented as a modal. A nil return falls back to
	// DefaultModalDetentConfiguration.
	ModalDetentConfiguration(route R) *ModalDetentConfiguration

	// TabItem supplies visual metadata when this coordinator is a child
	// of a TabCoordinator. A nil return is a configuration error the tab
	// coordinator may choose to report.
	TabItem() *TabItem
}

// BaseBehavior implements Behavior with conservative defaults: claims
// nothing, pushes when it does claim something, declares no prerequisite
// path, never wants a flow change, never cleans state for bubbling, and
// always lets a failing modal be dismissed. Embed it in a custom
// behavior type and override only the methods that need non-default
// logic.
type BaseBehavior[R Route] struct{}

func (BaseBehavior[R]) CanHandle(R) bool                            { return false }
func (BaseBehavior[R]) NavigationType(R) NavigationType              { return Push() }
func (BaseBehavior[R]) NavigationPath(R) []R                         { return nil }
func (BaseBehavior[R]) CanHandleFlowChange(Route) bool               { return false }
func (BaseBehavior[R]) HandleFlowChange(Route) bool                  { return false }
func (BaseBehavior[R]) ShouldCleanStateForBubbling(R) bool           { return false }
func (BaseBehavior[R]) ShouldDismissModalFor(R) bool                 { return true }
func (BaseBehavior[R]) ModalDetentConfiguration(R) *ModalDetentConfiguration { return nil }
func (BaseBehavior[R]) TabItem() *TabItem                            { return nil }
