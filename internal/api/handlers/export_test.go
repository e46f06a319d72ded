package handlers

import "time"

// SetNow overrides the clock of the status page.
func (h *StatusPageHandler) SetNow(now func() time.Time) { h.now = now }
