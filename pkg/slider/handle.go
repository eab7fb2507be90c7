package slider

import (
	"fmt"
	"strings"
)

// Handle selects one of the two slider handles.
type Handle int

const (
	// HandleLow is the x1 handle.
	HandleLow Handle = iota
	// HandleHigh is the x2 handle.
	HandleHigh
)

func (h Handle) String() string {
	switch h {
	case HandleLow:
		return "low"
	case HandleHigh:
		return "high"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

func (h Handle) IsValid() bool {
	return h == HandleLow || h == HandleHigh
}

func ParseHandle(s string) (Handle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "x1":
		return HandleLow, nil
	case "high", "x2":
		return HandleHigh, nil
	default:
		return HandleLow, fmt.Errorf("unknown handle %q, expecting low|x1|high|x2", s)
	}
}
