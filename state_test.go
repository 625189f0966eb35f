package navflow

import "testing"

func TestNavigationStateCurrentRoutePrecedence(t *testing.T) {
	root := testRoute{"root"}
	st := NavigationState[testRoute]{Root: root}

	if got := st.CurrentRoute(); got.Identifier() != "root" {
		t.Fatalf("empty state CurrentRoute = %q, want root", got.Identifier())
	}

	st.Stack = append(st.Stack, testRoute{"detail"})
	if got := st.CurrentRoute(); got.Identifier() != "detail" {
		t.Fatalf("with stack CurrentRoute = %q, want detail", got.Identifier())
	}

	modal := testRoute{"modal"}
	st.Presented = &modal
	if got := st.CurrentRoute(); got.Identifier() != "modal" {
		t.Fatalf("with presented CurrentRoute = %q, want modal", got.Identifier())
	}
}

func TestNavigationStateCurrentRouteIgnoresDetour(t *testing.T) {
	st := NavigationState[testRoute]{Root: testRoute{"root"}}
	st.Detour = otherRoute{"sheet"}

	if got := st.CurrentRoute(); got.Identifier() != "root" {
		t.Fatalf("detour must not affect CurrentRoute, got %q", got.Identifier())
	}
}

func TestNavigationStateCloneIsIndependent(t *testing.T) {
	st := NavigationState[testRoute]{Root: testRoute{"root"}, Stack: []testRoute{{"a"}}}
	st.ModalDetentConfig = DefaultModalDetentConfiguration()

	cp := st.clone()
	cp.Stack[0] = testRoute{"mutated"}
	cp.ModalDetentConfig.Detents[0] = DetentFullscreen

	if st.Stack[0].Identifier() != "a" {
		t.Fatalf("mutating clone's stack leaked into original")
	}
	if st.ModalDetentConfig.Detents[0] != DetentLarge {
		t.Fatalf("mutating clone's detent config leaked into original")
	}
}

func TestNavigationStateEqual(t *testing.T) {
	a := NavigationState[testRoute]{Root: testRoute{"root"}, Stack: []testRoute{{"x"}}}
	b := NavigationState[testRoute]{Root: testRoute{"root"}, Stack: []testRoute{{"x"}}}

	if !a.Equal(b) {
		t.Fatalf("expected equal states")
	}

	b.SelectedTab = 1
	if a.Equal(b) {
		t.Fatalf("expected states to differ on SelectedTab")
	}
}
