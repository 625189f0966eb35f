package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorRecordNavigate(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordNavigate("root", true, 5*time.Millisecond)
	c.RecordNavigate("root", false, 1*time.Millisecond)
	c.RecordValidationFailure("navigation_failed")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatalf("expected at least one metric family after recording")
	}

	found := false
	for _, f := range families {
		if f.GetName() == "navflow_navigate_total" {
			found = true
			if len(f.GetMetric()) != 2 {
				t.Fatalf("expected 2 label combinations for navigate_total, got %d", len(f.GetMetric()))
			}
		}
	}
	if !found {
		t.Fatalf("expected navflow_navigate_total to be registered")
	}
}

func TestCollectorModalAndDetourGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.SetModalActive(true)
	c.SetDetourActive(true)
	c.SetDetourActive(false)
	c.SetPushedChildrenDepth("root", 3)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	values := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if g := m.GetGauge(); g != nil {
				values[f.GetName()] += g.GetValue()
			}
		}
	}
	if values["navflow_active_modals"] != 1 {
		t.Fatalf("expected active_modals = 1, got %v", values["navflow_active_modals"])
	}
	if values["navflow_active_detours"] != 0 {
		t.Fatalf("expected active_detours = 0, got %v", values["navflow_active_detours"])
	}
	if values["navflow_pushed_children_depth"] != 3 {
		t.Fatalf("expected pushed_children_depth = 3, got %v", values["navflow_pushed_children_depth"])
	}
}

func TestNilCollectorMethodsAreNoops(t *testing.T) {
	var c *Collector
	c.RecordNavigate("root", true, time.Millisecond)
	c.RecordValidationFailure("x")
	c.SetModalActive(true)
	c.SetDetourActive(true)
	c.SetPushedChildrenDepth("root", 1)
}
