// Package errs defines the navigation engine's error taxonomy and the
// single central reporter every failure flows through.
//
// All errors produced by the engine are *Error values. They are never
// panics: a coordinator that cannot route a request returns false from
// Navigate and reports the reason here.
package errs

import "fmt"

// Code identifies the kind of navigation failure. Callers that want to
// react programmatically (retry, fallback route, telemetry tag) should
// switch on Code rather than parse Error().
type Code string

const (
	// NavigationFailed means validation or bubbling reached the root of
	// the tree with no coordinator able to handle the route and no flow
	// orchestrator willing to swap flows for it.
	NavigationFailed Code = "navigation_failed"

	// ViewCreationFailed means a ViewFactory returned no view for a route
	// that is currently being displayed in some presentation slot.
	ViewCreationFailed Code = "view_creation_failed"

	// ModalCoordinatorNotConfigured means a coordinator claimed a route as
	// NavigationType Modal but no registered modal coordinator (current or
	// otherwise) can handle it.
	ModalCoordinatorNotConfigured Code = "modal_coordinator_not_configured"

	// InvalidDetourNavigation means NavigationType returned Detour, which
	// is never a legal answer: detours are only reachable via explicit
	// presentation, never through navigate().
	InvalidDetourNavigation Code = "invalid_detour_navigation"

	// CircularReference means a coordinator was about to be attached as a
	// child of a coordinator already present in its own subtree.
	CircularReference Code = "circular_reference"

	// DuplicateChild means a coordinator already has a parent and was
	// about to be attached to a second one without first being removed.
	DuplicateChild Code = "duplicate_child"

	// InvalidTabIndex means a tab switch targeted an index outside
	// [0, len(children)) of a TabCoordinator.
	InvalidTabIndex Code = "invalid_tab_index"

	// ConfigurationError is the catch-all for diagnostics that do not fit
	// another kind, e.g. a tab coordinator with no TabItem.
	ConfigurationError Code = "configuration_error"
)

// ViewSlot names the presentation slot a view-creation failure occurred
// in, so the view layer knows which outlet needs the fallback error view.
type ViewSlot string

const (
	SlotRoot   ViewSlot = "root"
	SlotPushed ViewSlot = "pushed"
	SlotModal  ViewSlot = "modal"
	SlotDetour ViewSlot = "detour"
)

// Error is the single error type produced by the navigation engine. Every
// field beyond Code and CoordinatorName is optional and populated only
// when it applies to that Code.
type Error struct {
	Code            Code
	CoordinatorName string
	RouteID         string
	RouteType       string
	ChildName       string
	ViewSlot        ViewSlot
	TabIndex        int
	ValidTabRange   [2]int
	Message         string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	switch e.Code {
	case NavigationFailed:
		return fmt.Sprintf("navigation failed: %s could not route %q (%s)", e.CoordinatorName, e.RouteID, e.RouteType)
	case ViewCreationFailed:
		return fmt.Sprintf("view creation failed: %s produced no view for %q in slot %q", e.CoordinatorName, e.RouteID, e.ViewSlot)
	case ModalCoordinatorNotConfigured:
		return fmt.Sprintf("modal coordinator not configured: %s has no registered modal for %q", e.CoordinatorName, e.RouteID)
	case InvalidDetourNavigation:
		return fmt.Sprintf("invalid detour navigation: %s returned NavigationType detour for %q", e.CoordinatorName, e.RouteID)
	case CircularReference:
		return fmt.Sprintf("circular reference: %s already reachable from the candidate child", e.CoordinatorName)
	case DuplicateChild:
		return fmt.Sprintf("duplicate child: %s already has a parent, cannot attach to %s", e.ChildName, e.CoordinatorName)
	case InvalidTabIndex:
		return fmt.Sprintf("invalid tab index: %d not in [%d, %d)", e.TabIndex, e.ValidTabRange[0], e.ValidTabRange[1])
	case ConfigurationError:
		return fmt.Sprintf("configuration error in %s", e.CoordinatorName)
	default:
		return fmt.Sprintf("%s", e.Code)
	}
}

// NavigationFailedError builds a NavigationFailed Error.
func NavigationFailedError(coordinatorName, routeID, routeType, contextMessage string) *Error {
	return &Error{Code: NavigationFailed, CoordinatorName: coordinatorName, RouteID: routeID, RouteType: routeType, Message: contextMessage}
}

// ViewCreationFailedError builds a ViewCreationFailed Error.
func ViewCreationFailedError(coordinatorName, routeID, routeType string, slot ViewSlot) *Error {
	return &Error{Code: ViewCreationFailed, CoordinatorName: coordinatorName, RouteID: routeID, RouteType: routeType, ViewSlot: slot}
}

// ModalCoordinatorNotConfiguredError builds a ModalCoordinatorNotConfigured Error.
func ModalCoordinatorNotConfiguredError(coordinatorName, routeID, routeType string) *Error {
	return &Error{Code: ModalCoordinatorNotConfigured, CoordinatorName: coordinatorName, RouteID: routeID, RouteType: routeType}
}

// InvalidDetourNavigationError builds an InvalidDetourNavigation Error.
func InvalidDetourNavigationError(coordinatorName, routeID, routeType string) *Error {
	return &Error{Code: InvalidDetourNavigation, CoordinatorName: coordinatorName, RouteID: routeID, RouteType: routeType}
}

// CircularReferenceError builds a CircularReference Error.
func CircularReferenceError(coordinatorName string) *Error {
	return &Error{Code: CircularReference, CoordinatorName: coordinatorName}
}

// DuplicateChildError builds a DuplicateChild Error.
func DuplicateChildError(coordinatorName, childName string) *Error {
	return &Error{Code: DuplicateChild, CoordinatorName: coordinatorName, ChildName: childName}
}

// InvalidTabIndexError builds an InvalidTabIndex Error.
func InvalidTabIndexError(index, validLow, validHigh int) *Error {
	return &Error{Code: InvalidTabIndex, TabIndex: index, ValidTabRange: [2]int{validLow, validHigh}}
}

// ConfigurationErrorError builds a ConfigurationError Error (e.g. a tab
// coordinator with no TabItem configured).
func ConfigurationErrorError(coordinatorName, message string) *Error {
	return &Error{Code: ConfigurationError, CoordinatorName: coordinatorName, Message: message}
}

// Reporter receives every Error the engine produces. Embedders install
// one with SetReporter. Until one is installed, the package default
// discards every error: nothing is logged, and this module ships no
// logging-backed Reporter.
type Reporter interface {
	Report(err *Error)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(err *Error)

// Report implements Reporter.
func (f ReporterFunc) Report(err *Error) { f(err) }

// discardReporter is the default Reporter: it drops every error.
type discardReporter struct{}

func (discardReporter) Report(*Error) {}

var global Reporter = discardReporter{}

// SetReporter installs the process-wide error reporter. It is meant to be
// called once at startup by the embedder; later calls replace the prior
// reporter. Tests should call SetReporter(nil) during teardown to reset
// to the discarding default.
func SetReporter(r Reporter) {
	if r == nil {
		global = discardReporter{}
		return
	}
	global = r
}

// Report dispatches err to the currently installed reporter. The engine
// calls this at every point a failure is detected, whether or not that
// failure prevents navigation; it never panics and never blocks on
// embedder-supplied reporters misbehaving beyond what the reporter
// itself does.
func Report(err *Error) {
	if err == nil {
		return
	}
	global.Report(err)
}
