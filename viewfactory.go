package navflow

// ViewFactory builds an opaque view for a route. It is a pure function
// supplied by the embedder; the engine never interprets the returned
// view beyond checking it is non-nil.
type ViewFactory[R Route] interface {
	// BuildView returns the view for route, or nil if it cannot build one
	// (a defined error condition: Coordinator.View reports
	// ViewCreationFailed).
	BuildView(route R) any
}

// ViewFactoryFunc adapts a function to the ViewFactory interface.
type ViewFactoryFunc[R Route] func(route R) any

// BuildView implements ViewFactory.
func (f ViewFactoryFunc[R]) BuildView(route R) any { return f(route) }
