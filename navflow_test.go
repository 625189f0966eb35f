package navflow

// testRoute is the shared route fixture used across this package's
// tests: a single string identifier, nothing else.
type testRoute struct{ id string }

func (r testRoute) Identifier() string { return r.id }

// otherRoute is a second, unrelated route type used to exercise
// cross-type identifier comparison and heterogeneous coordinator trees.
type otherRoute struct{ id string }

func (r otherRoute) Identifier() string { return r.id }

// stubFactory builds a trivial, always-non-nil view for any route.
type stubFactory[R Route] struct{}

func (stubFactory[R]) BuildView(route R) any { return "view:" + route.Identifier() }

// nilFactory always fails to produce a view, for ViewCreationFailed tests.
type nilFactory[R Route] struct{}

func (nilFactory[R]) BuildView(route R) any { return nil }
