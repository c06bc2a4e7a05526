// Package integration contains integration tests for statcmp.
package integration

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/statcmp/internal/report"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func fixture(name string) string {
	return filepath.Join(fixturesDir(), name)
}

func TestFixturesLoad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		file       string
		wantLayout report.Layout
		wantTarget bool
		wantCost   uint64
	}{
		{"ground_truth.toml", report.LayoutTagged, true, 4},
		{"same.toml", report.LayoutTagged, true, 4},
		{"same.yaml", report.LayoutTagged, true, 4},
		{"same_flat.toml", report.LayoutFlat, true, 4},
		{"same_nested.toml", report.LayoutNested, true, 4},
		{"alignment_mismatch.toml", report.LayoutTagged, true, 4},
		{"cost_mismatch.toml", report.LayoutTagged, true, 5},
		{"both_mismatch.toml", report.LayoutTagged, true, 0},
		{"without_target.toml", report.LayoutTagged, false, 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			rep, err := report.Load(fixture(tt.file))
			if err != nil {
				t.Fatalf("Load(%s) error = %v", tt.file, err)
			}
			if rep.Layout != tt.wantLayout {
				t.Errorf("layout = %q, want %q", rep.Layout, tt.wantLayout)
			}
			_, isTarget := rep.Result.(report.WithTarget)
			if isTarget != tt.wantTarget {
				t.Errorf("WithTarget = %v, want %v", isTarget, tt.wantTarget)
			}
			if got := rep.Result.Stats().Cost; got != tt.wantCost {
				t.Errorf("cost = %d, want %d", got, tt.wantCost)
			}
		})
	}
}

func TestFixtureParametersArePreserved(t *testing.T) {
	t.Parallel()
	rep, err := report.Load(fixture("ground_truth.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := rep.Parameters["heuristic"]; got != "gap-affine" {
		t.Errorf("heuristic = %v, want gap-affine", got)
	}
	if got := rep.Parameters["seed"]; got != int64(42) {
		t.Errorf("seed = %v (%T), want 42", got, got)
	}
	if _, ok := rep.Parameters["WithTarget"]; ok {
		t.Error("result table leaked into parameters")
	}
	if got := rep.Result.Stats().Extra["opened_nodes"]; got != int64(17) {
		t.Errorf("opened_nodes = %v (%T), want 17", got, got)
	}
}
