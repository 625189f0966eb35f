package navflow

// NavigationState is the value container owned by a Router: root,
// push-stack, selected-tab index, presented modal route, detour route
// (type-erased), pushed-child coordinator handles, and modal detent
// configuration.
type NavigationState[R Route] struct {
	Root              R
	Stack             []R
	SelectedTab       int
	Presented         *R
	Detour            Route
	PushedChildren    []AnyCoordinator
	ModalDetentConfig *ModalDetentConfiguration
}

// CurrentRoute derives the visible route: presented modal, else the top
// of the stack, else root. Detour is intentionally excluded — presenting
// a detour must leave the underlying router's CurrentRoute unchanged.
func (s NavigationState[R]) CurrentRoute() Route {
	if s.Presented != nil {
		return *s.Presented
	}
	if n := len(s.Stack); n > 0 {
		return s.Stack[n-1]
	}
	return s.Root
}

// clone returns a deep copy, used both to hand a read-only snapshot to
// subscribers and to take "before" snapshots for atomicity tests.
func (s NavigationState[R]) clone() NavigationState[R] {
	cp := s
	cp.Stack = append([]R(nil), s.Stack...)
	if s.Presented != nil {
		p := *s.Presented
		cp.Presented = &p
	}
	cp.PushedChildren = append([]AnyCoordinator(nil), s.PushedChildren...)
	cp.ModalDetentConfig = s.ModalDetentConfig.clone()
	return cp
}

// Equal compares two states field-wise: by-value on primitive fields and
// the push stack, identifier-based for Detour, and reference-based for
// PushedChildren.
func (s NavigationState[R]) Equal(other NavigationState[R]) bool {
	if !sameRoute(s.Root, other.Root) {
		return false
	}
	if len(s.Stack) != len(other.Stack) {
		return false
	}
	for i := range s.Stack {
		if !sameRoute(s.Stack[i], other.Stack[i]) {
			return false
		}
	}
	if s.SelectedTab != other.SelectedTab {
		return false
	}
	if (s.Presented == nil) != (other.Presented == nil) {
		return false
	}
	if s.Presented != nil && !sameRoute(*s.Presented, *other.Presented) {
		return false
	}
	if (s.Detour == nil) != (other.Detour == nil) {
		return false
	}
	if s.Detour != nil && !sameRoute(s.Detour, other.Detour) {
		return false
	}
	if len(s.PushedChildren) != len(other.PushedChildren) {
		return false
	}
	for i := range s.PushedChildren {
		if s.PushedChildren[i] != other.PushedChildren[i] {
			return false
		}
	}
	if !modalDetentEqual(s.ModalDetentConfig, other.ModalDetentConfig) {
		return false
	}
	return true
}

func modalDetentEqual(a, b *ModalDetentConfiguration) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Detents) != len(b.Detents) {
		return false
	}
	for i := range a.Detents {
		if a.Detents[i] != b.Detents[i] {
			return false
		}
	}
	if (a.Selected == nil) != (b.Selected == nil) {
		return false
	}
	if a.Selected != nil && *a.Selected != *b.Selected {
		return false
	}
	if a.MinHeight != b.MinHeight {
		return false
	}
	if (a.IdealHeight == nil) != (b.IdealHeight == nil) {
		return false
	}
	if a.IdealHeight != nil && *a.IdealHeight != *b.IdealHeight {
		return false
	}
	return true
}
