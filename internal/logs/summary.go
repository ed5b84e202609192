package logs

import "strings"

// Summary holds the per-level counts for one snapshot.
//
// The buckets are disjoint except for the combined ErrorsOrWarnings
// count: a line tagged both [ERROR] and [WARN] counts once in each of
// Error and Warn, and once in ErrorsOrWarnings. Classification is
// idempotent; summarizing the same snapshot always yields identical
// counts.
type Summary struct {
	Total            int `json:"total"`
	Info             int `json:"info"`
	Log              int `json:"log"`
	Warn             int `json:"warn"`
	Error            int `json:"error"`
	Debug            int `json:"debug"`
	Events           int `json:"events"`
	ErrorsOrWarnings int `json:"errors_or_warnings"`
}

// Summarize counts total lines and per-level tag occurrences. Tags are
// matched case-insensitively anywhere in the line. [LOG] is a residual
// category: a line already counted as [INFO] is not counted again under
// [LOG].
func Summarize(s Snapshot) Summary {
	var sum Summary
	sum.Total = len(s.Lines)

	for _, line := range s.Lines {
		upper := strings.ToUpper(line)

		isInfo := strings.Contains(upper, "[INFO]")
		isWarn := strings.Contains(upper, "[WARN]")
		isError := strings.Contains(upper, "[ERROR]")
		isDebug := strings.Contains(upper, "[DEBUG]")
		isLog := strings.Contains(upper, "[LOG]") && !isInfo

		if isInfo {
			sum.Info++
		}
		if isLog {
			sum.Log++
		}
		if isWarn {
			sum.Warn++
		}
		if isError {
			sum.Error++
		}
		if isDebug {
			sum.Debug++
		}
		if isError || isWarn {
			sum.ErrorsOrWarnings++
		}
		if IsEvent(line) {
			sum.Events++
		}
	}
	return sum
}
