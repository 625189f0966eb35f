package navflow

import "testing"

func TestSameRoute(t *testing.T) {
	cases := []struct {
		name string
		a, b Route
		want bool
	}{
		{"equal same type", testRoute{"home"}, testRoute{"home"}, true},
		{"different ids same type", testRoute{"home"}, testRoute{"settings"}, false},
		{"equal across types", testRoute{"home"}, otherRoute{"home"}, true},
		{"both nil", nil, nil, true},
		{"one nil", testRoute{"home"}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sameRoute(tc.a, tc.b); got != tc.want {
				t.Fatalf("sameRoute(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIndexOfIdentifier(t *testing.T) {
	stack := []testRoute{{"a"}, {"b"}, {"c"}}

	if idx := indexOfIdentifier(stack, "b"); idx != 1 {
		t.Fatalf("indexOfIdentifier(b) = %d, want 1", idx)
	}
	if idx := indexOfIdentifier(stack, "missing"); idx != -1 {
		t.Fatalf("indexOfIdentifier(missing) = %d, want -1", idx)
	}
	if idx := indexOfIdentifier([]testRoute(nil), "a"); idx != -1 {
		t.Fatalf("indexOfIdentifier on empty stack = %d, want -1", idx)
	}
}
