package domain

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusInfo Status = "info"
)

// CheckResult is one line of a report. Section groups related checks and
// Name identifies the subject within the section (a field, a token, a file).
type CheckResult struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// IsGap reports whether the result is an advisory gap (a fail or a warning).
func (r CheckResult) IsGap() bool {
	return r.Status == StatusFail || r.Status == StatusWarn
}

// CountGaps counts results that are fails or warnings.
func CountGaps(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if r.IsGap() {
			n++
		}
	}
	return n
}

// HasFailure reports whether any result failed.
func HasFailure(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// FindResult returns the first result matching section and name.
func FindResult(results []CheckResult, section, name string) (CheckResult, bool) {
	for _, r := range results {
		if r.Section == section && r.Name == name {
			return r, true
		}
	}
	return CheckResult{}, false
}

// SectionResults returns the results belonging to section, in order.
func SectionResults(results []CheckResult, section string) []CheckResult {
	var out []CheckResult
	for _, r := range results {
		if r.Section == section {
			out = append(out, r)
		}
	}
	return out
}
