package navflow

import "testing"

func TestRouterPushPopReplace(t *testing.T) {
	r := NewRouter[testRoute](testRoute{"root"}, stubFactory[testRoute]{})
	var snapshots []NavigationState[testRoute]
	r.Subscribe(func(s NavigationState[testRoute]) { snapshots = append(snapshots, s) })

	r.push(testRoute{"a"})
	r.push(testRoute{"b"})
	r.replace(testRoute{"b2"})
	r.pop()

	if len(snapshots) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(snapshots))
	}
	if got := r.State().CurrentRoute().Identifier(); got != "a" {
		t.Fatalf("final current route = %q, want a", got)
	}
}

func TestRouterPopToAndPopToRoot(t *testing.T) {
	r := NewRouter[testRoute](testRoute{"root"}, stubFactory[testRoute]{})
	r.push(testRoute{"a"})
	r.push(testRoute{"b"})
	r.push(testRoute{"c"})

	r.popTo(testRoute{"a"})
	if got := r.State().Stack; len(got) != 1 || got[0].Identifier() != "a" {
		t.Fatalf("popTo(a) left stack %v", got)
	}

	r.popToRoot()
	if got := r.State().Stack; len(got) != 0 {
		t.Fatalf("popToRoot left stack %v", got)
	}
}

func TestRouterPresentAndDismissModal(t *testing.T) {
	r := NewRouter[testRoute](testRoute{"root"}, stubFactory[testRoute]{})
	r.present(testRoute{"modal"}, nil)

	st := r.State()
	if st.Presented == nil || st.Presented.Identifier() != "modal" {
		t.Fatalf("expected presented modal, got %v", st.Presented)
	}
	if st.ModalDetentConfig == nil || !st.ModalDetentConfig.hasDetent(DetentLarge) {
		t.Fatalf("expected default detent configuration, got %v", st.ModalDetentConfig)
	}

	r.dismissModal()
	if r.State().Presented != nil {
		t.Fatalf("expected no presented modal after dismiss")
	}
}

func TestRouterSetRootClearsDerivedState(t *testing.T) {
	r := NewRouter[testRoute](testRoute{"root"}, stubFactory[testRoute]{})
	r.push(testRoute{"a"})
	r.present(testRoute{"modal"}, nil)

	r.setRoot(testRoute{"new-root"})

	st := r.State()
	if st.Root.Identifier() != "new-root" {
		t.Fatalf("root not replaced")
	}
	if len(st.Stack) != 0 || st.Presented != nil {
		t.Fatalf("expected derived state cleared, got %+v", st)
	}
}

func TestRouterSelectTabSkipsRedundantNotify(t *testing.T) {
	r := NewRouter[testRoute](testRoute{"root"}, stubFactory[testRoute]{})
	notifications := 0
	r.Subscribe(func(NavigationState[testRoute]) { notifications++ })

	r.selectTab(0) // already 0, no-op
	r.selectTab(2)
	r.selectTab(2) // redundant

	if notifications != 1 {
		t.Fatalf("expected 1 notification for an actual tab change, got %d", notifications)
	}
}
