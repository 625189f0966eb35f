package navflow

import "testing"

func TestTabCoordinatorTriesSelectedTabFirst(t *testing.T) {
	tc := NewTabCoordinator[testRoute]("tabs", testRoute{"tabs-root"}, stubFactory[testRoute]{}, &mapBehavior{})

	tabA := newCoordinator("tab-a", testRoute{"a-root"}, map[string]NavigationType{"shared": Push()})
	tabB := newCoordinator("tab-b", testRoute{"b-root"}, map[string]NavigationType{"shared": Push()})
	if err := tc.AddChild(tabA); err != nil {
		t.Fatalf("AddChild(tabA) failed: %v", err)
	}
	if err := tc.AddChild(tabB); err != nil {
		t.Fatalf("AddChild(tabB) failed: %v", err)
	}
	if tabA.PresentationContext() != ContextTab || tabB.PresentationContext() != ContextTab {
		t.Fatalf("expected tab children to default to ContextTab")
	}

	if err := tc.SelectTab(1); err != nil {
		t.Fatalf("SelectTab(1) failed: %v", err)
	}

	if !tc.Navigate(testRoute{"shared"}) {
		t.Fatalf("expected navigate to a route both tabs claim to succeed")
	}

	if got := tabA.State().Stack; len(got) != 0 {
		t.Fatalf("expected tab A (not selected) to be untouched, got stack %v", got)
	}
	if got := tabB.State().Stack; len(got) != 1 || got[0].Identifier() != "shared" {
		t.Fatalf("expected tab B (selected) to receive the route, got %v", got)
	}
}

func TestTabCoordinatorFallsBackToOtherTabs(t *testing.T) {
	tc := NewTabCoordinator[testRoute]("tabs", testRoute{"tabs-root"}, stubFactory[testRoute]{}, &mapBehavior{})

	tabA := newCoordinator("tab-a", testRoute{"a-root"}, nil)
	tabB := newCoordinator("tab-b", testRoute{"b-root"}, map[string]NavigationType{"only-b": Push()})
	_ = tc.AddChild(tabA)
	_ = tc.AddChild(tabB)

	if err := tc.SelectTab(0); err != nil {
		t.Fatalf("SelectTab(0) failed: %v", err)
	}

	if !tc.Navigate(testRoute{"only-b"}) {
		t.Fatalf("expected tab coordinator to fall back to tab B")
	}
	if got := tc.State().SelectedTab; got != 1 {
		t.Fatalf("expected SelectTab to switch to tab B's index, got %d", got)
	}
}

func TestTabCoordinatorRejectsInvalidIndex(t *testing.T) {
	tc := NewTabCoordinator[testRoute]("tabs", testRoute{"tabs-root"}, stubFactory[testRoute]{}, &mapBehavior{})
	if err := tc.SelectTab(5); err == nil {
		t.Fatalf("expected SelectTab out of range to fail")
	}
}
