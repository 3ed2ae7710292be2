package loader

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	scrubOnce   sync.Once
	scrubPolicy *bluemonday.Policy
)

// scrubText strips all markup from admin-entered text. Labels and help text
// end up in rendered admin screens, so tags never survive the import.
func scrubText(raw string) string {
	scrubOnce.Do(func() {
		scrubPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(scrubPolicy.Sanitize(raw))
}
