package ducky

import "strings"

// Complexity buckets a debugging task for model-tier selection.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

var complexKeywords = []string{
	"race condition", "concurrency", "memory leak", "deadlock",
	"segmentation fault", "thread", "async", "performance", "scaling",
	"optimization", "tensorflow", "neural", "training", "distributed",
	"kubernetes", "microservice",
}

var simpleKeywords = []string{
	"syntax error", "typo", "undefined", "not defined", "missing import",
	"missing bracket", "missing semicolon", "indentation", "type error",
}

// EstimateComplexity buckets the task from keywords in the problem
// description and code. Complex keywords win over simple ones; anything
// unrecognized is medium.
func EstimateComplexity(problem, code string) Complexity {
	text := strings.ToLower(problem + " " + code)

	for _, kw := range complexKeywords {
		if strings.Contains(text, kw) {
			return ComplexityComplex
		}
	}
	for _, kw := range simpleKeywords {
		if strings.Contains(text, kw) {
			return ComplexitySimple
		}
	}
	return ComplexityMedium
}
