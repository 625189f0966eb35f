package navflow

// NavigationKind tags how a claimed route is brought on screen.
type NavigationKind int

const (
	// KindPush appends the route to the coordinator's push stack.
	KindPush NavigationKind = iota
	// KindReplace replaces the top of the push stack (or pushes, if empty).
	KindReplace
	// KindModal presents the route via a registered modal coordinator.
	KindModal
	// KindTabSwitch selects a tab index; the route itself is handled by
	// the tab child once selected.
	KindTabSwitch
)

// String renders the kind for logging/telemetry.
func (k NavigationKind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindReplace:
		return "replace"
	case KindModal:
		return "modal"
	case KindTabSwitch:
		return "tab_switch"
	default:
		return "unknown"
	}
}

// NavigationType describes how a coordinator presents a route it claims
// to handle. There is intentionally no "detour" kind: detours are only
// ever reached via explicit presentation, never through navigate().
type NavigationType struct {
	Kind     NavigationKind
	TabIndex int
}

// Push presents the route by pushing it onto the stack.
func Push() NavigationType { return NavigationType{Kind: KindPush} }

// Replace presents the route by replacing the top of the stack.
func Replace() NavigationType { return NavigationType{Kind: KindReplace} }

// Modal presents the route via a registered modal coordinator.
func Modal() NavigationType { return NavigationType{Kind: KindModal} }

// TabSwitch presents the route by selecting tab index i.
func TabSwitch(i int) NavigationType { return NavigationType{Kind: KindTabSwitch, TabIndex: i} }
