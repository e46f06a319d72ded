package mirror

// RunScheduled runs one cron tick synchronously.
func (s *Scheduler) RunScheduled() { s.runSync() }
