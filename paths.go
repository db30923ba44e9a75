package ctk

import (
	"strings"
)

// evtPath derives the EVT sidecar path from a CNT path by swapping the
// extension for ".evt" (or appending one, if path has none), the way the
// original library colocates a recording's sidecar next to the CNT file
// without requiring a second explicit path from the caller.
func evtPath(cntPath string) string {
	if i := strings.LastIndexByte(cntPath, '.'); i >= 0 && strings.LastIndexByte(cntPath, '/') < i {
		return cntPath[:i] + ".evt"
	}
	return cntPath + ".evt"
}
