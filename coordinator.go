package navflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnnypjr/navflow/audit"
	"github.com/johnnypjr/navflow/errs"
	"github.com/johnnypjr/navflow/metrics"
	"github.com/johnnypjr/navflow/telemetry"
)

// navGate serializes top-level Navigate calls across an entire
// coordinator tree: a subscriber calling Navigate in response to the
// state change the outer call just published is not processed inline,
// it is deferred to a single-producer queue behind the top-level entry.
// A blocking mutex cannot be used here: the reentrant call happens on
// the same logical call stack as the in-flight outer call, so blocking
// on it would deadlock rather than defer. Instead, a busy flag plus a
// pending queue lets the reentrant call return immediately (queued)
// while the in-flight call, once it finishes, drains the queue itself.
type navGate struct {
	mu      sync.Mutex
	busy    bool
	pending []func()
}

func newNavGate() *navGate { return &navGate{} }

// run executes fn now if the gate is free, making this call frame
// responsible for draining anything queued while fn (and anything it
// triggers reentrantly) runs. If the gate is already held — this is a
// reentrant call — fn is appended to the queue and run returns without
// waiting; the holder's run call drains it before returning.
func (g *navGate) run(fn func()) (ranImmediately bool) {
	g.mu.Lock()
	if g.busy {
		g.pending = append(g.pending, fn)
		g.mu.Unlock()
		return false
	}
	g.busy = true
	g.mu.Unlock()

	fn()

	for {
		g.mu.Lock()
		if len(g.pending) == 0 {
			g.busy = false
			g.mu.Unlock()
			return true
		}
		next := g.pending[0]
		g.pending = g.pending[1:]
		g.mu.Unlock()
		next()
	}
}

// AnyCoordinator is the type-erased view of a Coordinator[R] for some
// unknown R. It lets a coordinator tree mix route types across levels:
// a TabCoordinator[AppRoute] can hold a child Coordinator[SettingsRoute],
// since both satisfy AnyCoordinator even though their R differs.
//
// The unexported methods seal this interface to the package: only
// Coordinator[R] and the types embedding it (TabCoordinator[R],
// FlowOrchestrator[R]) may implement it, so embedders
// never have to (and cannot) hand-roll a conforming type.
type AnyCoordinator interface {
	// Name identifies the coordinator for logging and error messages.
	Name() string
	// Parent returns the coordinator this one is currently attached
	// under as a child, presented modal, or presented detour — nil if
	// this is a tree root.
	Parent() AnyCoordinator
	// PresentationContext reports how this coordinator was brought into
	// view, driving CanNavigateBack.
	PresentationContext() PresentationContext
	// CurrentRoute returns the coordinator's own visible route.
	CurrentRoute() Route
	// AllRoutes returns root followed by every stack entry, type-erased.
	AllRoutes() []Route
	// CanNavigateBack reports whether a back affordance applies: the stack
	// is non-empty, or the presentation context is pushed, modal or detour.
	CanNavigateBack() bool
	// CanNavigate reports whether this coordinator or any descendant
	// reachable through it (children, modals, detour) can handle route.
	CanNavigate(route Route) bool
	// CanHandleRoute reports whether this coordinator itself, specifically
	// (not its descendants), claims route.
	CanHandleRoute(route Route) bool
	// Pop performs the context-aware back action: pop the stack if
	// non-empty, else ask the parent to dismiss whichever presentation
	// slot this coordinator currently occupies, else no-op.
	Pop()
	// DismissModal releases this coordinator's active modal, if any.
	DismissModal()
	// DismissDetour releases this coordinator's active detour, if any.
	DismissDetour()
	// ResetToCleanState pops to root and dismisses modal/detour,
	// recursively for every child.
	ResetToCleanState()

	setParent(AnyCoordinator)
	clearParent()
	setPresentationContext(PresentationContext)
	adoptGate(*navGate)
	childrenList() []AnyCoordinator
	wantsModal(route Route) bool
	tabItem() *TabItem
	walk(route Route, caller AnyCoordinator, execute bool) *errs.Error
}

// identical reports whether a and b are the same coordinator, safely
// handling nil on either side (a bare == would be fine too, since every
// concrete coordinator is a pointer type, but this reads clearer at call
// sites that mix "possibly nil" values).
func identical(a, b AnyCoordinator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

func subtreeContains(root AnyCoordinator, candidate AnyCoordinator) bool {
	if identical(root, candidate) {
		return true
	}
	for _, child := range root.childrenList() {
		if subtreeContains(child, candidate) {
			return true
		}
	}
	return false
}

func routeTypeName(route Route) string {
	return fmt.Sprintf("%T", route)
}

// Coordinator is the generic engine type embedders construct one (or
// subclass one, via TabCoordinator/FlowOrchestrator) of per screen or
// flow. R is the coordinator's own route type; it may hold children,
// modal coordinators, and a detour coordinator of entirely different
// route types, all reachable only through the type-erased AnyCoordinator
// surface.
type Coordinator[R Route] struct {
	name     string
	behavior Behavior[R]
	router   *Router[R]

	children          []AnyCoordinator
	modalCoordinators []*Coordinator[R]
	currentModal      AnyCoordinator
	detour            AnyCoordinator

	parent              AnyCoordinator
	presentationContext PresentationContext

	emitter   telemetry.Emitter
	collector *metrics.Collector
	audit     *audit.SQLiteSink

	gate *navGate

	// self lets embedding types (TabCoordinator, FlowOrchestrator)
	// override which AnyCoordinator value represents "this coordinator"
	// in cross-wiring (parent/child/modal identity), since Go method
	// promotion does not give embedders virtual dispatch on their own.
	self AnyCoordinator
}

// NewCoordinator constructs a Coordinator rooted at root, using behavior
// to answer what a route claimed by this coordinator should do (how to
// present it, what prerequisite path to build, whether to clean up
// before bubbling), and factory to build views. Options configure
// telemetry, metrics, and auditing.
func NewCoordinator[R Route](name string, root R, factory ViewFactory[R], behavior Behavior[R], opts ...Option[R]) *Coordinator[R] {
	c := &Coordinator[R]{
		name:      name,
		behavior:  behavior,
		router:    NewRouter(root, factory),
		emitter:   telemetry.NullEmitter{},
		gate:      newNavGate(),
	}
	c.self = c
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements AnyCoordinator.
func (c *Coordinator[R]) Name() string { return c.name }

// Parent implements AnyCoordinator.
func (c *Coordinator[R]) Parent() AnyCoordinator { return c.parent }

// PresentationContext implements AnyCoordinator.
func (c *Coordinator[R]) PresentationContext() PresentationContext { return c.presentationContext }

// CurrentRoute implements AnyCoordinator.
func (c *Coordinator[R]) CurrentRoute() Route { return c.router.state.CurrentRoute() }

// AllRoutes implements AnyCoordinator.
func (c *Coordinator[R]) AllRoutes() []Route {
	st := c.router.state
	out := make([]Route, 0, len(st.Stack)+1)
	out = append(out, st.Root)
	for _, r := range st.Stack {
		out = append(out, r)
	}
	return out
}

// CanNavigateBack implements AnyCoordinator.
func (c *Coordinator[R]) CanNavigateBack() bool {
	if len(c.router.state.Stack) > 0 {
		return true
	}
	return c.presentationContext.ShouldShowBackButton()
}

// CanNavigate implements AnyCoordinator: reports whether this
// coordinator, or any child/modal/detour reachable through it, can
// handle route. Siblings are never consulted.
func (c *Coordinator[R]) CanNavigate(route Route) bool {
	if c.CanHandleRoute(route) {
		return true
	}
	for _, child := range c.children {
		if child.CanNavigate(route) {
			return true
		}
	}
	for _, mc := range c.modalCoordinators {
		if mc.CanNavigate(route) {
			return true
		}
	}
	if c.detour != nil && c.detour.CanNavigate(route) {
		return true
	}
	return false
}

// CanHandleRoute implements AnyCoordinator.
func (c *Coordinator[R]) CanHandleRoute(route Route) bool {
	asserted, ok := route.(R)
	return ok && c.behavior.CanHandle(asserted)
}

func (c *Coordinator[R]) setParent(p AnyCoordinator)                   { c.parent = p }
func (c *Coordinator[R]) clearParent()                                 { c.parent = nil }
func (c *Coordinator[R]) setPresentationContext(p PresentationContext) { c.presentationContext = p }
func (c *Coordinator[R]) childrenList() []AnyCoordinator               { return c.children }
func (c *Coordinator[R]) tabItem() *TabItem                            { return c.behavior.TabItem() }

func (c *Coordinator[R]) adoptGate(g *navGate) {
	c.gate = g
	for _, child := range c.children {
		child.adoptGate(g)
	}
	for _, mc := range c.modalCoordinators {
		mc.adoptGate(g)
	}
}

// wantsModal reports whether, presuming route is of type R and this
// coordinator directly claims it, it would want Modal presentation. Used
// by a parent deciding whether to push this coordinator into its stack
// or let it present its own modal in place.
func (c *Coordinator[R]) wantsModal(route Route) bool {
	asserted, ok := route.(R)
	if !ok || !c.behavior.CanHandle(asserted) {
		return false
	}
	return c.behavior.NavigationType(asserted).Kind == KindModal
}

// State returns a read-only snapshot of this coordinator's own navigation
// state.
func (c *Coordinator[R]) State() NavigationState[R] { return c.router.State() }

// Subscribe registers fn against this coordinator's own router.
func (c *Coordinator[R]) Subscribe(fn func(NavigationState[R])) { c.router.Subscribe(fn) }

// View builds the view for route in the given slot, reporting
// ViewCreationFailed if the configured factory yields nil.
func (c *Coordinator[R]) View(route R, slot errs.ViewSlot) any {
	v := c.router.View(route)
	if v == nil {
		errs.Report(errs.ViewCreationFailedError(c.name, route.Identifier(), routeTypeName(route), slot))
	}
	return v
}

// UpdateModalIdealHeight records a view-layer content measurement against
// the active modal's detent configuration. No-op if no modal is presented.
func (c *Coordinator[R]) UpdateModalIdealHeight(h float64) { c.router.updateModalIdealHeight(h) }

// UpdateModalMinHeight records a view-layer content measurement against
// the active modal's detent configuration. No-op if no modal is presented.
func (c *Coordinator[R]) UpdateModalMinHeight(h float64) { c.router.updateModalMinHeight(h) }

// UpdateModalSelectedDetent records a user-driven detent change against
// the active modal's detent configuration. No-op if no modal is presented.
func (c *Coordinator[R]) UpdateModalSelectedDetent(d Detent) { c.router.updateModalSelectedDetent(d) }

// BackAction returns a closure the view layer can bind to a back button;
// it is equivalent to calling Pop directly and exists for embedders that
// want to pass navigation as a first-class value.
func (c *Coordinator[R]) BackAction() func() {
	return func() { c.Pop() }
}

// AddChild attaches child as a permanent member of this coordinator's
// tree, defaulting its presentation context to root. Rejects a child
// that already has a parent (DuplicateChild) or whose subtree already
// contains this coordinator (CircularReference).
func (c *Coordinator[R]) AddChild(child AnyCoordinator) error {
	if child == nil {
		return nil
	}
	if child.Parent() != nil {
		err := errs.DuplicateChildError(c.name, child.Name())
		errs.Report(err)
		return err
	}
	if subtreeContains(child, c.self) {
		err := errs.CircularReferenceError(c.name)
		errs.Report(err)
		return err
	}
	c.children = append(c.children, child)
	child.setParent(c.self)
	child.setPresentationContext(ContextRoot)
	child.adoptGate(c.gate)
	return nil
}

// RemoveChild detaches child, if present, giving it a fresh independent
// reentrancy gate.
func (c *Coordinator[R]) RemoveChild(child AnyCoordinator) {
	for i, ch := range c.children {
		if identical(ch, child) {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			ch.clearParent()
			ch.adoptGate(newNavGate())
			return
		}
	}
}

// AddModalCoordinator registers mc as available for modal presentation.
// Registration is permanent; mc only becomes active (parent set,
// presentation context Modal) when a navigate() call actually presents
// it.
func (c *Coordinator[R]) AddModalCoordinator(mc *Coordinator[R]) error {
	if mc == nil {
		return nil
	}
	if mc.Parent() != nil {
		err := errs.DuplicateChildError(c.name, mc.Name())
		errs.Report(err)
		return err
	}
	c.modalCoordinators = append(c.modalCoordinators, mc)
	mc.adoptGate(c.gate)
	return nil
}

// RemoveModalCoordinator unregisters mc, dismissing it first if it is
// currently active.
func (c *Coordinator[R]) RemoveModalCoordinator(mc *Coordinator[R]) {
	for i, m := range c.modalCoordinators {
		if m == mc {
			c.modalCoordinators = append(c.modalCoordinators[:i:i], c.modalCoordinators[i+1:]...)
			if identical(c.currentModal, AnyCoordinator(mc)) {
				c.dismissActiveModal()
			}
			return
		}
	}
}

// PresentDetour presents coord as this coordinator's detour while
// keeping the underlying CurrentRoute() unchanged: a detour overlays the
// tree without replacing whatever route the coordinator was already
// showing. presenting is the route recorded as the active detour route
// in state.
func (c *Coordinator[R]) PresentDetour(coord AnyCoordinator, presenting Route) {
	if coord == nil {
		return
	}
	if c.detour != nil {
		c.dismissActiveDetour()
	}
	coord.setParent(c.self)
	coord.setPresentationContext(ContextDetour)
	coord.adoptGate(c.gate)
	c.detour = coord
	c.router.presentDetour(presenting)
	if c.collector != nil {
		c.collector.SetDetourActive(true)
	}
}

// DismissModal implements AnyCoordinator.
func (c *Coordinator[R]) DismissModal() { c.dismissActiveModal() }

// DismissDetour implements AnyCoordinator.
func (c *Coordinator[R]) DismissDetour() { c.dismissActiveDetour() }

func (c *Coordinator[R]) dismissActiveModal() {
	if c.currentModal == nil {
		return
	}
	c.currentModal.clearParent()
	c.currentModal.setPresentationContext(ContextRoot)
	c.currentModal = nil
	c.router.dismissModal()
	if c.collector != nil {
		c.collector.SetModalActive(false)
	}
}

func (c *Coordinator[R]) dismissActiveDetour() {
	if c.detour == nil {
		return
	}
	c.detour.clearParent()
	c.detour.setPresentationContext(ContextRoot)
	c.detour = nil
	c.router.dismissDetour()
	if c.collector != nil {
		c.collector.SetDetourActive(false)
	}
}

// Pop performs the context-aware back action: pop the stack if
// non-empty, else ask the parent to dismiss whichever presentation slot
// this coordinator currently occupies, else no-op.
func (c *Coordinator[R]) Pop() {
	if len(c.router.state.Stack) > 0 {
		c.router.pop()
		return
	}
	if c.parent == nil {
		return
	}
	switch c.presentationContext {
	case ContextModal:
		c.parent.DismissModal()
	case ContextDetour:
		c.parent.DismissDetour()
	}
}

// ResetToCleanState implements AnyCoordinator: pops to root, dismisses
// any active modal and detour, and recurses into every child.
func (c *Coordinator[R]) ResetToCleanState() {
	c.router.popToRoot()
	c.dismissActiveModal()
	c.dismissActiveDetour()
	for _, child := range c.children {
		child.ResetToCleanState()
	}
}

// TransitionToNewFlow replaces this coordinator's root and clears every
// piece of derived state (stack, presented modal, detour, pushed
// children). Intended for use by a FlowOrchestrator swapping to a whole
// new root screen.
func (c *Coordinator[R]) TransitionToNewFlow(root R) {
	c.dismissActiveModal()
	c.dismissActiveDetour()
	c.router.setRoot(root)
}

func (c *Coordinator[R]) cleanStateForBubbling() {
	c.dismissActiveModal()
}

func (c *Coordinator[R]) isChild(caller AnyCoordinator) bool {
	for _, ch := range c.children {
		if identical(ch, caller) {
			return true
		}
	}
	return false
}

func (c *Coordinator[R]) maybePopPushedCallerChild(caller AnyCoordinator) {
	if caller == nil {
		return
	}
	n := len(c.router.state.PushedChildren)
	if n == 0 {
		return
	}
	if identical(c.router.state.PushedChildren[n-1], caller) {
		c.router.popChild()
		if c.collector != nil {
			c.collector.SetPushedChildrenDepth(c.name, len(c.router.state.PushedChildren))
		}
	}
}

// maybeBuildPath pushes/replaces the prerequisite routes c.behavior
// declares for route, when the stack is currently empty. Returns true if
// route itself was one of the path entries (nothing further to do).
func (c *Coordinator[R]) maybeBuildPath(route R) bool {
	if len(c.router.state.Stack) != 0 {
		return false
	}
	path := c.behavior.NavigationPath(route)
	if len(path) == 0 {
		return false
	}
	reachedTarget := false
	for _, p := range path {
		switch c.behavior.NavigationType(p).Kind {
		case KindPush:
			c.router.push(p)
		case KindReplace:
			c.router.replace(p)
		default:
			errs.Report(errs.ConfigurationErrorError(c.name, fmt.Sprintf("navigationPath entry %q must resolve to push or replace", p.Identifier())))
			continue
		}
		if sameRoute(p, route) {
			reachedTarget = true
		}
	}
	return reachedTarget
}

func (c *Coordinator[R]) pickModalFor(route R) AnyCoordinator {
	if c.currentModal != nil && c.currentModal.CanHandleRoute(route) {
		return c.currentModal
	}
	for _, mc := range c.modalCoordinators {
		if mc.behavior.CanHandle(route) {
			return AnyCoordinator(mc)
		}
	}
	return nil
}

func (c *Coordinator[R]) activateModal(target AnyCoordinator, route R) {
	if c.currentModal != nil && !identical(c.currentModal, target) {
		c.dismissActiveModal()
	}
	target.setParent(c.self)
	target.setPresentationContext(ContextModal)
	target.adoptGate(c.gate)
	c.currentModal = target
	c.router.present(route, c.behavior.ModalDetentConfiguration(route))
	if c.collector != nil {
		c.collector.SetModalActive(true)
	}
}

// Navigate is the public entry point: a side-effect-free validation pass
// over the whole reachable tree, followed — only if validation succeeds
// — by an execution pass that performs the same decisions for real.
//
// A call arriving while another is already in flight on this tree —
// typically a subscriber calling Navigate in reaction to the state
// change the in-flight call just published — is queued behind it
// rather than processed inline. Such a call returns true immediately to
// its caller without waiting; its actual outcome is only observable
// afterward, through the subscribed state or telemetry.
func (c *Coordinator[R]) Navigate(route R) bool {
	result := true
	c.gate.run(func() { result = c.navigateOnce(route) })
	return result
}

func (c *Coordinator[R]) navigateOnce(route R) bool {
	correlationID := uuid.NewString()
	start := time.Now()
	c.emitter.Emit(telemetry.Event{CorrelationID: correlationID, Coordinator: c.name, RouteID: route.Identifier(), Msg: "navigate_start"})

	if verr := c.self.walk(route, nil, false); verr != nil {
		errs.Report(verr)
		c.emitter.Emit(telemetry.Event{CorrelationID: correlationID, Coordinator: c.name, RouteID: route.Identifier(), Msg: "validate_failed", Meta: map[string]any{"error": verr.Error()}})
		if c.collector != nil {
			c.collector.RecordNavigate(c.name, false, time.Since(start))
			c.collector.RecordValidationFailure(string(verr.Code))
		}
		c.recordAudit(correlationID, route, false, string(verr.Code), start)
		return false
	}

	eerr := c.self.walk(route, nil, true)
	success := eerr == nil
	if !success {
		errs.Report(eerr)
	}
	if c.collector != nil {
		c.collector.RecordNavigate(c.name, success, time.Since(start))
	}
	msg := "navigate_committed"
	reason := ""
	if !success {
		msg = "navigate_execute_failed"
		reason = string(eerr.Code)
	}
	c.emitter.Emit(telemetry.Event{CorrelationID: correlationID, Coordinator: c.name, RouteID: route.Identifier(), Msg: msg})
	c.recordAudit(correlationID, route, success, reason, start)
	return success
}

// resolvedKind reports, in the vocabulary audit.Decision.Kind uses, how
// route was ultimately presented: the NavigationType this coordinator's
// own behavior resolved it to, if it claims route directly, or "bubble"
// if the route was ultimately handled by a descendant, a registered
// modal, or a parent further up the tree.
func (c *Coordinator[R]) resolvedKind(route R) string {
	if !c.behavior.CanHandle(route) {
		return "bubble"
	}
	return c.behavior.NavigationType(route).Kind.String()
}

func (c *Coordinator[R]) recordAudit(correlationID string, route R, success bool, reason string, at time.Time) {
	if c.audit == nil {
		return
	}
	outcome := "success"
	code := ""
	if !success {
		outcome = "failure"
		code = reason
	}
	_ = c.audit.Record(context.Background(), audit.Decision{
		CorrelationID: correlationID,
		Coordinator:   c.name,
		RouteID:       route.Identifier(),
		Kind:          c.resolvedKind(route),
		Outcome:       outcome,
		ErrorCode:     code,
		Timestamp:     at,
	})
}

// walkCore implements the navigation steps common to every coordinator
// regardless of children strategy: smart navigation, modal delegation,
// detour delegation, and direct handling. handled reports whether one
// of those steps produced a final decision (success or a
// definitive failure); when handled is false, the caller must continue
// with children delegation and bubbling.
func (c *Coordinator[R]) walkCore(route Route, caller AnyCoordinator, execute bool) (err *errs.Error, handled bool) {
	// 1. Smart navigation: only applies when route is of this
	// coordinator's own type.
	if asserted, ok := route.(R); ok {
		st := c.router.state
		switch {
		case sameRoute(st.CurrentRoute(), asserted):
			if execute {
				c.maybePopPushedCallerChild(caller)
			}
			return nil, true
		case indexOfIdentifier(st.Stack, asserted.Identifier()) >= 0:
			if execute {
				c.router.popTo(asserted)
				c.maybePopPushedCallerChild(caller)
			}
			return nil, true
		case sameRoute(st.Root, asserted):
			if execute {
				if len(st.Stack) > 0 {
					c.router.popToRoot()
				}
				c.maybePopPushedCallerChild(caller)
			}
			return nil, true
		}
	}

	skipDelegation := caller != nil && c.isChild(caller)

	// 2. Modal delegation.
	if c.currentModal != nil && !identical(c.currentModal, caller) && !skipDelegation {
		merr := c.currentModal.walk(route, c.self, execute)
		if execute {
			if merr == nil && c.router.state.Presented != nil {
				return nil, true
			}
			if merr != nil || c.shouldDismissModalForRoute(route) {
				c.dismissActiveModal()
			}
		} else if merr == nil {
			return nil, true
		}
	}

	// 3. Detour delegation.
	if c.detour != nil && !identical(c.detour, caller) && !skipDelegation {
		derr := c.detour.walk(route, c.self, execute)
		if execute {
			if derr == nil && c.router.state.Detour != nil {
				return nil, true
			}
			c.dismissActiveDetour()
		} else if derr == nil {
			return nil, true
		}
	}

	// 4. Direct handling.
	if asserted, ok := route.(R); ok && c.behavior.CanHandle(asserted) {
		navType := c.behavior.NavigationType(asserted)
		switch navType.Kind {
		case KindPush, KindReplace, KindTabSwitch:
			if execute {
				if !c.maybeBuildPath(asserted) {
					switch navType.Kind {
					case KindPush:
						c.router.push(asserted)
					case KindReplace:
						c.router.replace(asserted)
					case KindTabSwitch:
						c.router.selectTab(navType.TabIndex)
					}
				}
			}
			return nil, true
		case KindModal:
			target := c.pickModalFor(asserted)
			if target == nil {
				cerr := errs.ModalCoordinatorNotConfiguredError(c.name, asserted.Identifier(), routeTypeName(asserted))
				return cerr, true
			}
			if execute {
				if !c.maybeBuildPath(asserted) {
					c.activateModal(target, asserted)
					return target.walk(asserted, c.self, true), true
				}
				return nil, true
			}
			return nil, true
		default:
			return errs.InvalidDetourNavigationError(c.name, asserted.Identifier(), routeTypeName(asserted)), true
		}
	}

	return nil, false
}

func (c *Coordinator[R]) shouldDismissModalForRoute(route Route) bool {
	asserted, ok := route.(R)
	if !ok {
		return true
	}
	return c.behavior.ShouldDismissModalFor(asserted)
}

// walk implements AnyCoordinator for the plain (non-tab) coordinator:
// walkCore, then generic children delegation, then bubbling.
func (c *Coordinator[R]) walk(route Route, caller AnyCoordinator, execute bool) *errs.Error {
	if err, handled := c.walkCore(route, caller, execute); handled {
		return err
	}

	// 5. Delegate to children.
	for _, child := range c.children {
		if identical(child, caller) {
			continue
		}
		if !identical(child.Parent(), c.self) {
			continue
		}
		if !child.CanNavigate(route) {
			continue
		}
		if child.wantsModal(route) {
			return child.walk(route, c.self, execute)
		}
		if execute {
			if asserted, ok := route.(R); ok && len(c.router.state.Stack) == 0 {
				c.maybeBuildPath(asserted)
			}
			c.router.pushChild(child)
			if c.collector != nil {
				c.collector.SetPushedChildrenDepth(c.name, len(c.router.state.PushedChildren))
			}
			child.setParent(c.self)
			child.setPresentationContext(ContextPushed)
		}
		return child.walk(route, c.self, execute)
	}

	// Registered-but-inactive modal coordinators, for routes reachable
	// only through a modal's own descendant.
	for _, mc := range c.modalCoordinators {
		anyMC := AnyCoordinator(mc)
		if identical(anyMC, caller) || identical(anyMC, c.currentModal) {
			continue
		}
		if !mc.CanNavigate(route) {
			continue
		}
		asserted, ok := route.(R)
		if execute {
			if !ok {
				return errs.ModalCoordinatorNotConfiguredError(c.name, route.Identifier(), routeTypeName(route))
			}
			if len(c.router.state.Stack) == 0 {
				c.maybeBuildPath(asserted)
			}
			c.activateModal(anyMC, asserted)
		}
		return mc.walk(route, c.self, execute)
	}

	// 6. Bubble to parent.
	if c.parent == nil {
		if c.behavior.CanHandleFlowChange(route) {
			if execute && !c.behavior.HandleFlowChange(route) {
				return errs.NavigationFailedError(c.name, route.Identifier(), routeTypeName(route), "flow change declined at execution time")
			}
			return nil
		}
		return errs.NavigationFailedError(c.name, route.Identifier(), routeTypeName(route), "reached root with no handler")
	}
	if execute {
		if asserted, ok := route.(R); ok && c.behavior.ShouldCleanStateForBubbling(asserted) {
			c.cleanStateForBubbling()
		}
	}
	return c.parent.walk(route, c.self, execute)
}
