package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	frameMu      sync.Mutex
	lastFrameTs  string
	frameCounter int
)

// NextFrameID returns a unique ID of the form "YYYYMMDD-HHMMSS-NN" for
// the given timestamp. The counter resets to 01 each new second.
func NextFrameID(ts time.Time) string {
	frameMu.Lock()
	defer frameMu.Unlock()
	tsStr := ts.Format("20060102-150405")
	if tsStr == lastFrameTs {
		frameCounter++
	} else {
		lastFrameTs = tsStr
		frameCounter = 1
	}
	return fmt.Sprintf("%s-%02d", tsStr, frameCounter)
}

// BuildPath returns dir/<name>_<id>.png.
func BuildPath(dir, name, id string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", name, id))
}

// LatestPath returns dir/<name>.png, the frame overwritten on every refresh.
func LatestPath(dir, name string) string {
	return filepath.Join(dir, name+".png")
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
