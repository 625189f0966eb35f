package navflow

// TabItem is the visual metadata a coordinator supplies for itself when
// it is a child of a TabCoordinator. The engine never interprets Image;
// it is an opaque handle the view layer resolves (an asset name, an SF
// Symbol name, whatever the embedder's view factory understands).
type TabItem struct {
	Text  string
	Image any
}
