package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var runCounter atomic.Int64

// NewTestRunID returns a process-unique run ID. Pass t.Name() so the ID can be
// traced back to its test in logs and spans.
func NewTestRunID(prefix, tname string) string {
	id := runCounter.Add(1)
	return fmt.Sprintf("%s-%s-%d", prefix, strings.ReplaceAll(tname, `/`, `-_-`), id)
}
