// Package preview holds at most one downloaded document on disk at a time
// so it can be opened with a local viewer.
package preview

import (
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/emsdesk/internal/filex"
)

type Previewer struct {
	dir string

	mu      sync.Mutex
	current string
}

func New(dir string) *Previewer {
	return &Previewer{dir: dir}
}

// Load writes data to a fresh file in the preview directory and releases
// the previous preview. It returns the new file's path.
func (p *Previewer) Load(name string, data []byte) (string, error) {
	dir, err := filex.EnsureDir(p.dir)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, "*-"+filex.SafeName(name))
	if err != nil {
		return "", fmt.Errorf("create preview file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close preview file: %w", err)
	}

	p.mu.Lock()
	prev := p.current
	p.current = f.Name()
	p.mu.Unlock()

	if err := filex.RemoveIfExists(prev); err != nil {
		return f.Name(), err
	}
	return f.Name(), nil
}

// Current is the path of the live preview, or "".
func (p *Previewer) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Close removes the live preview, if any.
func (p *Previewer) Close() error {
	p.mu.Lock()
	prev := p.current
	p.current = ""
	p.mu.Unlock()

	return filex.RemoveIfExists(prev)
}
