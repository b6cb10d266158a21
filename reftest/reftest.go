// Package reftest provides a test harness for running WPT (Web Platform
// Tests)-style reference tests against this pipeline.
//
// Reference tests (reftests) compare the rendered output of a test page
// against a reference page. If they render identically, the test
// passes. Since rasterization is out of scope, "identically" here means
// their JSON-serialized display lists are equal (within floating-point
// tolerance), not that their pixels match.
//
// See: https://web-platform-tests.org/writing-tests/reftests.html
package reftest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/carlosmndzg/ferrum"
)

// Result represents the outcome of a single reftest.
type Result struct {
	TestFile      string
	ReferenceFile string
	RelationType  string // "match" or "mismatch"
	Status        Status
	Message       string
}

// Status represents the status of a test.
type Status int

const (
	// Pass indicates the test passed.
	Pass Status = iota
	// Fail indicates the test failed.
	Fail
	// Error indicates an error occurred running the test.
	Error
	// Skip indicates the test was skipped (e.g., unsupported feature).
	Skip
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Error:
		return "ERROR"
	case Skip:
		return "SKIP"
	default:
		return "UNKNOWN"
	}
}

// Summary provides aggregate statistics for a test run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Errors  int
	Skipped int
	Results []Result
}

// PassRate returns the percentage of tests that passed.
func (s *Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Runner executes reference tests.
type Runner struct {
	baseDir        string
	verbose        bool
	viewportWidth  float64
	viewportHeight float64
}

// NewRunner creates a new reftest runner with an 800x600 viewport.
func NewRunner(baseDir string, verbose bool) *Runner {
	return &Runner{
		baseDir:        baseDir,
		verbose:        verbose,
		viewportWidth:  800,
		viewportHeight: 600,
	}
}

// RunTest runs a single reftest.
func (r *Runner) RunTest(testPath string) Result {
	result := Result{
		TestFile: testPath,
	}

	testContent, err := os.ReadFile(testPath)
	if err != nil {
		result.Status = Error
		result.Message = fmt.Sprintf("failed to read test file: %v", err)
		return result
	}

	refPath, relType, err := findReferenceLink(string(testContent), testPath)
	if err != nil {
		result.Status = Skip
		result.Message = fmt.Sprintf("no reference link found: %v", err)
		return result
	}

	result.ReferenceFile = refPath
	result.RelationType = relType

	refContent, err := os.ReadFile(refPath)
	if err != nil {
		result.Status = Error
		result.Message = fmt.Sprintf("failed to read reference file: %v", err)
		return result
	}

	match, err := r.compareDisplayLists(string(testContent), filepath.Dir(testPath), string(refContent), filepath.Dir(refPath))
	if err != nil {
		result.Status = Error
		result.Message = fmt.Sprintf("display-list comparison failed: %v", err)
		return result
	}

	if relType == "match" {
		if match {
			result.Status = Pass
			result.Message = "display lists match as expected"
		} else {
			result.Status = Fail
			result.Message = "display lists do not match"
		}
	} else { // mismatch
		if !match {
			result.Status = Pass
			result.Message = "display lists differ as expected"
		} else {
			result.Status = Fail
			result.Message = "display lists unexpectedly match"
		}
	}

	return result
}

// RunDirectory runs all reftests in a directory.
func (r *Runner) RunDirectory(dir string) Summary {
	summary := Summary{
		Results: make([]Result, 0),
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if strings.Contains(filepath.Base(path), "-ref") {
			return nil
		}
		if !strings.HasSuffix(path, ".html") && !strings.HasSuffix(path, ".htm") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		if hasReferenceLink(string(content)) {
			result := r.RunTest(path)
			summary.Results = append(summary.Results, result)
			summary.Total++

			switch result.Status {
			case Pass:
				summary.Passed++
			case Fail:
				summary.Failed++
			case Error:
				summary.Errors++
			case Skip:
				summary.Skipped++
			}

			if r.verbose {
				fmt.Printf("[%s] %s\n", result.Status, path)
				if result.Message != "" {
					fmt.Printf("        %s\n", result.Message)
				}
			}
		}

		return nil
	})

	if err != nil && r.verbose {
		fmt.Printf("Error walking directory: %v\n", err)
	}

	return summary
}

// compareDisplayLists renders both HTML documents and compares their
// display lists.
func (r *Runner) compareDisplayLists(testHTML, testDir, refHTML, refDir string) (bool, error) {
	testDoc, err := ferrum.Render(testHTML, testDir, r.viewportWidth, r.viewportHeight)
	if err != nil {
		return false, fmt.Errorf("failed to render test: %w", err)
	}

	refDoc, err := ferrum.Render(refHTML, refDir, r.viewportWidth, r.viewportHeight)
	if err != nil {
		return false, fmt.Errorf("failed to render reference: %w", err)
	}

	testGeneric, err := toGeneric(testDoc.DisplayList)
	if err != nil {
		return false, err
	}
	refGeneric, err := toGeneric(refDoc.DisplayList)
	if err != nil {
		return false, err
	}

	return deepEqualTolerant(testGeneric, refGeneric, 0.1), nil
}

// toGeneric round-trips v through JSON into a generic any tree, so
// structurally-equal display lists compare equal even when built from
// differently-typed Go values.
func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling display list: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling display list: %w", err)
	}
	return out, nil
}

// deepEqualTolerant compares two JSON-decoded trees, treating numbers
// within tolerance of each other as equal.
func deepEqualTolerant(a, b any, tolerance float64) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && floatEqual(av, bv, tolerance)
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if !deepEqualTolerant(v, bv[k], tolerance) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualTolerant(av[i], bv[i], tolerance) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// findReferenceLink finds the <link rel="match|mismatch" href="..."> in the HTML.
func findReferenceLink(htmlContent, testPath string) (string, string, error) {
	re := regexp.MustCompile(`(?i)<link[^>]+rel\s*=\s*["'](match|mismatch)["'][^>]+href\s*=\s*["']([^"']+)["']`)
	matches := re.FindStringSubmatch(htmlContent)

	if len(matches) < 3 {
		re = regexp.MustCompile(`(?i)<link[^>]+href\s*=\s*["']([^"']+)["'][^>]+rel\s*=\s*["'](match|mismatch)["']`)
		matches = re.FindStringSubmatch(htmlContent)
		if len(matches) < 3 {
			return "", "", fmt.Errorf("no reference link found")
		}
		matches = []string{matches[0], matches[2], matches[1]}
	}

	relType := strings.ToLower(matches[1])
	refHref := matches[2]

	testDir := filepath.Dir(testPath)
	refPath := filepath.Join(testDir, refHref)

	return refPath, relType, nil
}

// hasReferenceLink checks if HTML content contains a reference link.
func hasReferenceLink(htmlContent string) bool {
	re := regexp.MustCompile(`(?i)<link[^>]+rel\s*=\s*["'](match|mismatch)["']`)
	return re.MatchString(htmlContent)
}

// floatEqual compares two floats with tolerance.
func floatEqual(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// PrintSummary prints a human-readable summary of test results.
func PrintSummary(summary Summary) {
	fmt.Println("\n========================================")
	fmt.Println("Reftest Summary")
	fmt.Println("========================================")
	fmt.Printf("Total:   %d\n", summary.Total)
	fmt.Printf("Passed:  %d (%.1f%%)\n", summary.Passed, summary.PassRate())
	fmt.Printf("Failed:  %d\n", summary.Failed)
	fmt.Printf("Errors:  %d\n", summary.Errors)
	fmt.Printf("Skipped: %d\n", summary.Skipped)
	fmt.Println("========================================")

	if summary.Failed > 0 {
		fmt.Println("\nFailed Tests:")
		for _, r := range summary.Results {
			if r.Status == Fail {
				fmt.Printf("  - %s: %s\n", r.TestFile, r.Message)
			}
		}
	}

	if summary.Errors > 0 {
		fmt.Println("\nTests with Errors:")
		for _, r := range summary.Results {
			if r.Status == Error {
				fmt.Printf("  - %s: %s\n", r.TestFile, r.Message)
			}
		}
	}
}
