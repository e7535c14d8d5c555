// internal/poller/types.go
package poller

// Frame is one raw register block, register-ordered.
// A Frame always holds exactly the configured block size; a short read
// never produces a partial Frame.
type Frame []uint16
