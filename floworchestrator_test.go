package navflow

import "testing"

func TestFlowOrchestratorTransitionSwapsChildAndResetsRoot(t *testing.T) {
	fo := NewFlowOrchestrator[testRoute]("app", testRoute{"splash"}, stubFactory[testRoute]{}, &mapBehavior{})

	onboarding := newCoordinator("onboarding", testRoute{"onboarding-root"}, nil)
	fo.TransitionToFlow(onboarding, testRoute{"onboarding"})

	if fo.CurrentFlow() == nil {
		t.Fatalf("expected a current flow after transition")
	}
	if fo.State().Root.Identifier() != "onboarding" {
		t.Fatalf("expected root replaced with onboarding, got %q", fo.State().Root.Identifier())
	}
	if onboarding.Parent() == nil {
		t.Fatalf("expected onboarding flow attached as a child")
	}

	authenticated := newCoordinator("authenticated", testRoute{"home-root"}, nil)
	fo.TransitionToFlow(authenticated, testRoute{"authenticated"})

	if onboarding.Parent() != nil {
		t.Fatalf("expected previous flow detached after a second transition")
	}
	if fo.CurrentFlow() != AnyCoordinator(authenticated) {
		t.Fatalf("expected current flow to be the newly attached coordinator")
	}
	if fo.State().Root.Identifier() != "authenticated" {
		t.Fatalf("expected root replaced again, got %q", fo.State().Root.Identifier())
	}
}
