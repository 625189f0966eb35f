package navflow

import "github.com/johnnypjr/navflow/errs"

// TabCoordinator is a Coordinator whose children are tabs rather than a
// plain push-delegation list. Each child added via AddChild defaults to
// PresentationContext Tab instead of Root, and navigate() tries the
// currently selected tab first before falling back to the others, rather
// than walking children in registration order.
type TabCoordinator[R Route] struct {
	*Coordinator[R]
}

// NewTabCoordinator constructs a TabCoordinator rooted at root.
func NewTabCoordinator[R Route](name string, root R, factory ViewFactory[R], behavior Behavior[R], opts ...Option[R]) *TabCoordinator[R] {
	base := NewCoordinator(name, root, factory, behavior, opts...)
	tc := &TabCoordinator[R]{Coordinator: base}
	base.self = tc
	return tc
}

// AddChild attaches child as a tab, defaulting its presentation context
// to Tab. The child must supply a non-nil TabItem via its own Behavior;
// a nil TabItem is reported as a ConfigurationError but does not prevent
// attachment.
func (tc *TabCoordinator[R]) AddChild(child AnyCoordinator) error {
	if err := tc.Coordinator.AddChild(child); err != nil {
		return err
	}
	child.setPresentationContext(ContextTab)
	if child.tabItem() == nil {
		errs.Report(errs.ConfigurationErrorError(child.Name(), "tab child has no TabItem"))
	}
	return nil
}

// SelectTab switches the active tab by index, reporting InvalidTabIndex
// if out of range.
func (tc *TabCoordinator[R]) SelectTab(index int) error {
	n := len(tc.Coordinator.children)
	if index < 0 || index >= n {
		err := errs.InvalidTabIndexError(index, 0, n)
		errs.Report(err)
		return err
	}
	tc.Coordinator.router.selectTab(index)
	return nil
}

// walk overrides the generic children-delegation step: try the currently
// selected tab first (unless it is the caller), then the remaining tabs
// in order. If no tab can handle route, a registered modal coordinator
// that can reach it is presented; failing that, route bubbles directly
// to the parent (or, with no parent, goes to the flow-change hooks)
// without re-entering the generic children loop.
func (tc *TabCoordinator[R]) walk(route Route, caller AnyCoordinator, execute bool) *errs.Error {
	base := tc.Coordinator
	if err, handled := base.walkCore(route, caller, execute); handled {
		return err
	}

	children := base.children
	selected := base.router.state.SelectedTab
	order := make([]int, 0, len(children))
	if selected >= 0 && selected < len(children) {
		order = append(order, selected)
	}
	for i := range children {
		if i != selected {
			order = append(order, i)
		}
	}

	for _, i := range order {
		child := children[i]
		if identical(child, caller) {
			continue
		}
		if !child.CanNavigate(route) {
			continue
		}
		if execute && i != selected {
			base.router.selectTab(i)
		}
		return child.walk(route, base.self, execute)
	}

	for _, mc := range base.modalCoordinators {
		anyMC := AnyCoordinator(mc)
		if identical(anyMC, caller) || identical(anyMC, base.currentModal) {
			continue
		}
		if !mc.CanNavigate(route) {
			continue
		}
		asserted, ok := route.(R)
		if execute {
			if !ok {
				return errs.ModalCoordinatorNotConfiguredError(base.name, route.Identifier(), routeTypeName(route))
			}
			if len(base.router.state.Stack) == 0 {
				base.maybeBuildPath(asserted)
			}
			base.activateModal(anyMC, asserted)
		}
		return mc.walk(route, base.self, execute)
	}

	if base.parent == nil {
		if base.behavior.CanHandleFlowChange(route) {
			if execute && !base.behavior.HandleFlowChange(route) {
				return errs.NavigationFailedError(base.name, route.Identifier(), routeTypeName(route), "flow change declined at execution time")
			}
			return nil
		}
		return errs.NavigationFailedError(base.name, route.Identifier(), routeTypeName(route), "reached root with no handler")
	}
	if execute {
		if asserted, ok := route.(R); ok && base.behavior.ShouldCleanStateForBubbling(asserted) {
			base.cleanStateForBubbling()
		}
	}
	return base.parent.walk(route, base.self, execute)
}
