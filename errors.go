package fallingsand

import "fmt"

// fatalf reports a programming-error invariant breach (§7): these are bugs,
// not user errors, so the core aborts rather than attempting recovery. The
// host, observing the panic, is expected to transition to a "crashed" state
// and offer a reload; the message carries the Universe's run id and
// generation so a crash report can be correlated with logs.
func (u *Universe) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.logger.Errorf("invariant breach: %s", msg)
	panic(fmt.Sprintf("fallingsand: invariant breach (run=%s gen=%d): %s", u.id, u.generation, msg))
}
