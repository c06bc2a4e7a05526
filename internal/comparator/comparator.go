// Package comparator decides whether a test report reproduced the alignment
// and cost of a ground-truth report.
package comparator

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/AndreyAkinshin/statcmp/internal/errors"
	"github.com/AndreyAkinshin/statcmp/internal/logging"
	"github.com/AndreyAkinshin/statcmp/internal/report"
)

// Options configures a Comparator.
type Options struct {
	Logger *slog.Logger
}

// DefaultOptions returns the default comparator settings.
func DefaultOptions() Options {
	return Options{
		Logger: logging.New("comparator"),
	}
}

// Comparable is the part of a report that takes part in a comparison.
type Comparable struct {
	Alignment report.Alignment
	Cost      uint64
}

// Verdict is the outcome of comparing two reports.
// A verdict passes only when both criteria match.
type Verdict struct {
	AlignmentsMatch bool
	CostsMatch      bool
}

// Passed reports whether the test report reproduced the ground truth.
func (v Verdict) Passed() bool {
	return v.AlignmentsMatch && v.CostsMatch
}

// Comparator loads, extracts and compares reports.
type Comparator struct {
	logger *slog.Logger
}

// New creates a Comparator. A nil logger discards all records.
func New(opts Options) *Comparator {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Comparator{logger: logger}
}

// ExtractAlignment returns the alignment and cost of a report whose run
// reached its target. A report without a target yields a KindMissingAlignment
// error attributed to role.
func ExtractAlignment(role string, rep *report.Report) (Comparable, error) {
	switch r := rep.Result.(type) {
	case report.WithTarget:
		return Comparable{Alignment: r.Alignment, Cost: r.Statistics.Cost}, nil
	case report.WithoutTarget:
		return Comparable{}, errors.MissingAlignment(role, rep.Path)
	default:
		e := errors.Newf("unsupported alignment result %T", rep.Result)
		e.Role, e.Stage, e.File = role, errors.StageExtract, rep.Path
		return Comparable{}, e
	}
}

// Compare evaluates both criteria and logs one line for each.
// Neither check short-circuits the other.
func (c *Comparator) Compare(groundTruth, test Comparable) Verdict {
	v := Verdict{
		AlignmentsMatch: alignmentsEqual(groundTruth.Alignment, test.Alignment),
		CostsMatch:      groundTruth.Cost == test.Cost,
	}

	if v.AlignmentsMatch {
		c.logger.Info("the alignments are the same",
			"operations", len(groundTruth.Alignment))
	} else {
		c.logger.Info("the alignments are NOT the same",
			"ground_truth_operations", len(groundTruth.Alignment),
			"test_operations", len(test.Alignment))
	}

	if v.CostsMatch {
		c.logger.Info("the costs are the same",
			"cost", groundTruth.Cost)
	} else {
		c.logger.Info("the costs are NOT the same",
			"ground_truth_cost", groundTruth.Cost,
			"test_cost", test.Cost)
	}

	return v
}

// Run loads the ground truth and test reports, in that order, and compares
// them. The returned error is a *errors.StatcmpError naming the failing
// stage, role and file; a failing verdict is reported as KindVerdictMismatch
// together with the verdict itself.
func (c *Comparator) Run(groundTruthPath, testPath string) (Verdict, error) {
	c.logger.Info("loading ground truth statistics", "path", groundTruthPath)
	groundTruth, err := c.load(errors.RoleGroundTruth, groundTruthPath)
	if err != nil {
		return Verdict{}, err
	}

	c.logger.Info("loading test statistics", "path", testPath)
	test, err := c.load(errors.RoleTest, testPath)
	if err != nil {
		return Verdict{}, err
	}

	gt, err := ExtractAlignment(errors.RoleGroundTruth, groundTruth)
	if err != nil {
		return Verdict{}, err
	}
	tc, err := ExtractAlignment(errors.RoleTest, test)
	if err != nil {
		return Verdict{}, err
	}

	v := c.Compare(gt, tc)
	if !v.Passed() {
		return v, errors.VerdictMismatch()
	}
	return v, nil
}

func (c *Comparator) load(role, path string) (*report.Report, error) {
	rep, err := report.Load(path)
	if err != nil {
		var se *errors.StatcmpError
		if stderrors.As(err, &se) {
			return nil, se.WithRole(role)
		}
		return nil, fmt.Errorf("[%s] %w", role, err)
	}

	c.logger.Debug("report loaded",
		"role", role,
		"layout", rep.Layout,
		"variant", rep.Result.Variant(),
		"parameters", len(rep.Parameters))
	return rep, nil
}

// alignmentsEqual is ordered structural equality: same length and the same
// kind, count and payload at every index.
func alignmentsEqual(a, b report.Alignment) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
