package text

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a patch describing how before turns into after.
// It is empty when both are equal.
func Diff(before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.PatchToText(dmp.PatchMake(before, diffs))
}
