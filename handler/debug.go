package handler

import (
	"io"
	"os"
	"sync"

	"github.com/tvanholt/consolog/core"
	"github.com/tvanholt/consolog/formatter"
)

// DebugHandler writes uncolored log lines to a debug output stream.
type DebugHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDebugHandler creates a debug handler writing to w
// (default: os.Stderr)
func NewDebugHandler(w io.Writer) *DebugHandler {
	if w == nil {
		w = os.Stderr
	}
	return &DebugHandler{w: w}
}

// Write writes one rendered line under the handler's lock
func (h *DebugHandler) Write(level core.Level, category, message string, _ interface{}) error {
	line := formatter.Line(level, category, message)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}
