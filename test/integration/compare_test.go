package integration

import (
	"testing"

	"github.com/AndreyAkinshin/statcmp/internal/comparator"
	"github.com/AndreyAkinshin/statcmp/internal/errors"
	"github.com/AndreyAkinshin/statcmp/pkg/statcmp"
)

// Integration tests for whole comparison runs over real fixture files.
// Unit tests for equality and extraction live in internal/comparator.

func TestCompareFixtures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		test          string
		wantAlignment bool
		wantCost      bool
		wantExit      int
	}{
		{"ground_truth.toml", true, true, statcmp.ExitSuccess},
		{"same.toml", true, true, statcmp.ExitSuccess},
		{"same.yaml", true, true, statcmp.ExitSuccess},
		{"same_flat.toml", true, true, statcmp.ExitSuccess},
		{"same_nested.toml", true, true, statcmp.ExitSuccess},
		{"alignment_mismatch.toml", false, true, statcmp.ExitMismatch},
		{"cost_mismatch.toml", true, false, statcmp.ExitMismatch},
		{"both_mismatch.toml", false, false, statcmp.ExitMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.test, func(t *testing.T) {
			t.Parallel()
			c := comparator.New(comparator.Options{})

			v, err := c.Run(fixture("ground_truth.toml"), fixture(tt.test))
			if v.AlignmentsMatch != tt.wantAlignment {
				t.Errorf("AlignmentsMatch = %v, want %v", v.AlignmentsMatch, tt.wantAlignment)
			}
			if v.CostsMatch != tt.wantCost {
				t.Errorf("CostsMatch = %v, want %v", v.CostsMatch, tt.wantCost)
			}
			if got := errors.GetExitCode(err); got != tt.wantExit {
				t.Errorf("exit code = %d, want %d (err = %v)", got, tt.wantExit, err)
			}
		})
	}
}

func TestCompareIsSymmetricOnFixtures(t *testing.T) {
	t.Parallel()
	files := []string{"same.toml", "alignment_mismatch.toml", "cost_mismatch.toml"}

	for _, name := range files {
		c := comparator.New(comparator.Options{})
		forward, _ := c.Run(fixture("ground_truth.toml"), fixture(name))
		backward, _ := c.Run(fixture(name), fixture("ground_truth.toml"))
		if forward != backward {
			t.Errorf("%s: forward verdict %+v != backward verdict %+v", name, forward, backward)
		}
	}
}
