// internal/status/publisher.go
package status

import (
	"errors"
	"fmt"
	"os"
)

// Publisher writes the mirror snapshot to a well-known path, fully
// replacing the previous snapshot. The replace is atomic (temp file +
// rename) so an external reader never observes a half-written mirror.
type Publisher struct {
	path string
}

// NewPublisher creates a publisher for the given mirror path.
func NewPublisher(path string) (*Publisher, error) {
	if path == "" {
		return nil, errors.New("status: mirror path required")
	}
	return &Publisher{path: path}, nil
}

// Path returns the mirror path.
func (p *Publisher) Path() string { return p.path }

// Publish replaces the mirror with this cycle's snapshot.
func (p *Publisher) Publish(s Snapshot) error {
	data := Encode(s)

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("status: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("status: replace %s: %w", p.path, err)
	}

	return nil
}
