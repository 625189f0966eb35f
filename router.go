package navflow

// Router owns one NavigationState and publishes every change to it. It
// is the only mutator of that state; all mutator methods are
// unexported, reachable only from within this package's navigate
// algorithm.
//
// Router itself never draws. View(route) simply forwards to the
// configured ViewFactory.
type Router[R Route] struct {
	state       NavigationState[R]
	factory     ViewFactory[R]
	subscribers []func(NavigationState[R])
}

// NewRouter constructs a Router rooted at root, with no stack, no
// presented modal or detour, and no pushed children.
func NewRouter[R Route](root R, factory ViewFactory[R]) *Router[R] {
	return &Router[R]{
		state: NavigationState[R]{
			Root:        root,
			SelectedTab: 0,
		},
		factory: factory,
	}
}

// State returns a read-only snapshot of the current navigation state.
func (r *Router[R]) State() NavigationState[R] {
	return r.state.clone()
}

// Subscribe registers fn to be called, synchronously, every time the
// state changes. Subscribers are invoked in registration order,
// immediately after the mutation that triggered them, so notifications
// are delivered in the exact order state mutations occurred.
func (r *Router[R]) Subscribe(fn func(NavigationState[R])) {
	if fn == nil {
		return
	}
	r.subscribers = append(r.subscribers, fn)
}

// View returns whatever the configured ViewFactory produces for route.
// A nil factory or a factory that returns nil are both reported as
// ViewCreationFailed by the caller (the router itself has no coordinator
// name to attach to the error, so it leaves reporting to Coordinator).
func (r *Router[R]) View(route R) any {
	if r.factory == nil {
		return nil
	}
	return r.factory.BuildView(route)
}

// publish notifies every subscriber of the current state. Called after
// every mutator below.
func (r *Router[R]) publish() {
	snap := r.state.clone()
	for _, fn := range r.subscribers {
		fn(snap)
	}
}

// push appends route to the stack.
func (r *Router[R]) push(route R) {
	r.state.Stack = append(r.state.Stack, route)
	r.publish()
}

// pop removes the last element of the stack, if any.
func (r *Router[R]) pop() {
	if n := len(r.state.Stack); n > 0 {
		r.state.Stack = r.state.Stack[:n-1]
		r.publish()
	}
}

// popTo truncates the stack to the index of the first occurrence of
// route (inclusive). No-op if route is not present.
func (r *Router[R]) popTo(route Route) {
	idx := indexOfIdentifier(r.state.Stack, route.Identifier())
	if idx < 0 {
		return
	}
	r.state.Stack = r.state.Stack[:idx+1]
	r.publish()
}

// popToRoot clears the stack entirely.
func (r *Router[R]) popToRoot() {
	if len(r.state.Stack) == 0 {
		return
	}
	r.state.Stack = nil
	r.publish()
}

// replace replaces the top of the stack with route, or pushes it if the
// stack is empty.
func (r *Router[R]) replace(route R) {
	if n := len(r.state.Stack); n > 0 {
		r.state.Stack[n-1] = route
	} else {
		r.state.Stack = append(r.state.Stack, route)
	}
	r.publish()
}

// present sets the active modal route and its detent configuration. A
// nil detentConfig falls back to DefaultModalDetentConfiguration.
func (r *Router[R]) present(route R, detentConfig *ModalDetentConfiguration) {
	if detentConfig == nil {
		detentConfig = DefaultModalDetentConfiguration()
	}
	r.state.Presented = &route
	r.state.ModalDetentConfig = detentConfig.clone()
	r.publish()
}

// dismissModal clears the active modal route and its detent configuration.
func (r *Router[R]) dismissModal() {
	if r.state.Presented == nil {
		return
	}
	r.state.Presented = nil
	r.state.ModalDetentConfig = nil
	r.publish()
}

// presentDetour sets the type-erased detour route.
func (r *Router[R]) presentDetour(route Route) {
	r.state.Detour = route
	r.publish()
}

// dismissDetour clears the type-erased detour route.
func (r *Router[R]) dismissDetour() {
	if r.state.Detour == nil {
		return
	}
	r.state.Detour = nil
	r.publish()
}

// pushChild appends child to the flattened pushed-children list.
func (r *Router[R]) pushChild(child AnyCoordinator) {
	r.state.PushedChildren = append(r.state.PushedChildren, child)
	r.publish()
}

// popChild removes the last pushed child, if any.
func (r *Router[R]) popChild() {
	if n := len(r.state.PushedChildren); n > 0 {
		r.state.PushedChildren = r.state.PushedChildren[:n-1]
		r.publish()
	}
}

// selectTab sets the selected tab index.
func (r *Router[R]) selectTab(i int) {
	if r.state.SelectedTab == i {
		return
	}
	r.state.SelectedTab = i
	r.publish()
}

// setRoot replaces root and clears all derived state: stack, presented
// modal, detour, pushed children, and modal detent configuration.
func (r *Router[R]) setRoot(root R) {
	r.state = NavigationState[R]{Root: root}
	r.publish()
}

// updateModalIdealHeight adjusts the active modal's ideal height. No-op
// if there is no active modal.
func (r *Router[R]) updateModalIdealHeight(h float64) {
	if r.state.ModalDetentConfig == nil {
		return
	}
	r.state.ModalDetentConfig.IdealHeight = &h
	r.publish()
}

// updateModalMinHeight adjusts the active modal's minimum height. No-op
// if there is no active modal.
func (r *Router[R]) updateModalMinHeight(h float64) {
	if r.state.ModalDetentConfig == nil {
		return
	}
	r.state.ModalDetentConfig.MinHeight = h
	r.publish()
}

// updateModalSelectedDetent adjusts the active modal's selected detent.
// No-op if there is no active modal.
func (r *Router[R]) updateModalSelectedDetent(d Detent) {
	if r.state.ModalDetentConfig == nil {
		return
	}
	r.state.ModalDetentConfig.Selected = &d
	r.publish()
}
