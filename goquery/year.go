package goquery

import "regexp"

// digitRuns matches maximal runs of ASCII digits. Scanning whole runs
// emulates the negative lookarounds of the year pattern, which RE2 does
// not support: a year embedded in a longer digit run (an ID, a timestamp)
// never surfaces as a 4-digit run. Both scans are linear in the input.
var digitRuns = regexp.MustCompile(`[0-9]+`)

// yearPattern matches a plausible artwork year, 1500-2099 inclusive.
var yearPattern = regexp.MustCompile(`^(?:1[5-9][0-9]{2}|20[0-9]{2})$`)

// findYear returns the first 4-digit year in the 1500-2099 range that is
// not part of a longer digit run.
func findYear(text string) (string, bool) {
	for _, run := range digitRuns.FindAllString(text, -1) {
		if yearPattern.MatchString(run) {
			return run, true
		}
	}
	return "", false
}
