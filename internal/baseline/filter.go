package baseline

import "github.com/leapstack-labs/msglint/pkg/lint"

// Filter removes accepted findings from diags. It consumes counts, so that
// a finding accepted once suppresses one occurrence only and a duplicate
// introduced later is still reported. It returns the remaining findings and
// the number suppressed.
func Filter(counts map[string]int, path string, diags []lint.Diagnostic) ([]lint.Diagnostic, int) {
	if len(counts) == 0 {
		return diags, 0
	}

	kept := make([]lint.Diagnostic, 0, len(diags))
	suppressed := 0
	for _, d := range diags {
		fp := Fingerprint(path, d)
		if counts[fp] > 0 {
			counts[fp]--
			suppressed++
			continue
		}
		kept = append(kept, d)
	}
	return kept, suppressed
}
