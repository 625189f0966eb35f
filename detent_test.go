package navflow

import "testing"

func TestShouldUseFullScreenCover(t *testing.T) {
	cases := []struct {
		name string
		cfg  *ModalDetentConfiguration
		want bool
	}{
		{"nil config", nil, false},
		{"default large", DefaultModalDetentConfiguration(), false},
		{"only fullscreen", &ModalDetentConfiguration{Detents: []Detent{DetentFullscreen}}, true},
		{"fullscreen plus other", &ModalDetentConfiguration{Detents: []Detent{DetentFullscreen, DetentLarge}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.ShouldUseFullScreenCover(); got != tc.want {
				t.Fatalf("ShouldUseFullScreenCover() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestModalDetentConfigurationCloneIsIndependent(t *testing.T) {
	selected := DetentMedium
	height := 42.0
	cfg := &ModalDetentConfiguration{
		Detents:     []Detent{DetentSmall, DetentMedium},
		Selected:    &selected,
		IdealHeight: &height,
	}

	cp := cfg.clone()
	cp.Detents[0] = DetentLarge
	*cp.Selected = DetentLarge
	*cp.IdealHeight = 100

	if cfg.Detents[0] != DetentSmall {
		t.Fatalf("clone mutation leaked into Detents")
	}
	if *cfg.Selected != DetentMedium {
		t.Fatalf("clone mutation leaked into Selected")
	}
	if *cfg.IdealHeight != 42.0 {
		t.Fatalf("clone mutation leaked into IdealHeight")
	}
}
