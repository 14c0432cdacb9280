// Package runlock serializes decorate runs against a destination root.
//
// Two concurrent runs interleaving create/remove decisions on one
// destination tree would race each other's conflict checks, so each run
// takes an advisory flock keyed by the absolute destination root. Lock
// files live under the XDG state directory, never inside the destination
// tree itself.
package runlock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"

	decorerr "github.com/arthur-debert/decorate/pkg/errors"
)

// Lock is a held run lock.
type Lock struct {
	flock *flock.Flock
	path  string
}

// Acquire takes the run lock for destRoot without blocking. It fails with
// an ErrLockHeld-coded error when another decorate run holds the lock.
func Acquire(destRoot string) (*Lock, error) {
	return acquireAt(lockPath(xdg.StateHome, destRoot))
}

// AcquireInDir is Acquire with an explicit lock directory, for tests.
func AcquireInDir(lockDir, destRoot string) (*Lock, error) {
	return acquireAt(lockPath(lockDir, destRoot))
}

func acquireAt(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, decorerr.Wrapf(err, decorerr.ErrInternal, "creating lock directory %s", filepath.Dir(path))
	}

	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, decorerr.Wrapf(err, decorerr.ErrInternal, "locking %s", path)
	}
	if !acquired {
		return nil, decorerr.New(decorerr.ErrLockHeld,
			"another decorate run is using this destination root").WithDetail("lock", path)
	}
	return &Lock{flock: fl, path: path}, nil
}

// Release drops the lock. The lock file itself is left behind; flock
// semantics make a stale file harmless.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return decorerr.Wrapf(err, decorerr.ErrInternal, "unlocking %s", l.path)
	}
	return nil
}

// Path returns the lock file location, mainly for diagnostics.
func (l *Lock) Path() string {
	return l.path
}

// lockPath derives a stable lock file name from the destination root.
func lockPath(lockDir, destRoot string) string {
	abs, err := filepath.Abs(destRoot)
	if err != nil {
		abs = destRoot
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir, "decorate", "locks", fmt.Sprintf("%x.lock", sum[:8]))
}
