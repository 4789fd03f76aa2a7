package ui

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/logs"
)

// SnapshotList displays the presenter snapshots saved on disk.
type SnapshotList struct {
	mu        sync.Mutex
	dir       string
	files     []FileInfo
	list      *widget.List
	container *fyne.Container
	log       *slog.Logger
}

// FileInfo holds metadata about a saved file
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// NewSnapshotList creates a list of the PNG files under dir.
func NewSnapshotList(dir string, logger *slog.Logger) *SnapshotList {
	sl := &SnapshotList{
		dir:   dir,
		files: []FileInfo{},
		log:   logs.WithComponent(logger, "snapshots"),
	}

	sl.list = widget.NewList(
		func() int {
			sl.mu.Lock()
			defer sl.mu.Unlock()
			return len(sl.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			sl.mu.Lock()
			defer sl.mu.Unlock()
			if id >= len(sl.files) {
				return
			}
			label := obj.(*widget.Label)
			label.SetText(formatFileItem(sl.files[id], time.Now()))
		},
	)

	sl.list.OnSelected = func(id widget.ListItemID) {
		sl.mu.Lock()
		if id >= len(sl.files) {
			sl.mu.Unlock()
			return
		}
		path := sl.files[id].Path
		sl.mu.Unlock()

		go sl.openFile(path)

		// Deselect immediately to allow re-selection
		sl.list.UnselectAll()
	}

	header := widget.NewLabel("Snapshots")
	header.TextStyle = fyne.TextStyle{Bold: true}

	sl.container = container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		sl.list,
	)

	sl.Refresh()

	return sl
}

// Container returns the container widget
func (sl *SnapshotList) Container() *fyne.Container {
	return sl.container
}

// Dir returns the scanned directory.
func (sl *SnapshotList) Dir() string {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.dir
}

// SetDir updates the directory to scan and refreshes the list.
func (sl *SnapshotList) SetDir(dir string) {
	sl.mu.Lock()
	sl.dir = dir
	sl.mu.Unlock()
	sl.Refresh()
}

// Files returns the files found by the last scan, newest first.
func (sl *SnapshotList) Files() []FileInfo {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return append([]FileInfo(nil), sl.files...)
}

// Refresh rescans the directory and updates the file list
func (sl *SnapshotList) Refresh() {
	files, err := scanSnapshots(sl.Dir())
	if err != nil && !os.IsNotExist(err) {
		sl.log.Error("scan snapshots", "dir", sl.Dir(), "err", err)
		return
	}
	if files == nil {
		files = []FileInfo{}
	}

	sl.mu.Lock()
	sl.files = files
	sl.mu.Unlock()

	sl.list.Refresh()
}

// scanSnapshots finds all PNG files under dir (recursive).
func scanSnapshots(dir string) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".png" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Name:     filepath.Base(path),
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Modified.Equal(files[j].Modified) {
			return files[i].Name > files[j].Name
		}
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}

// formatFileItem formats a file entry for display
func formatFileItem(fi FileInfo, now time.Time) string {
	var sizeStr string
	if fi.Size < 1024 {
		sizeStr = fmt.Sprintf("%d B", fi.Size)
	} else if fi.Size < 1024*1024 {
		sizeStr = fmt.Sprintf("%.1f KB", float64(fi.Size)/1024)
	} else {
		sizeStr = fmt.Sprintf("%.1f MB", float64(fi.Size)/(1024*1024))
	}

	// Time of day for today's files, the date otherwise
	var timeStr string
	if fi.Modified.Year() == now.Year() && fi.Modified.YearDay() == now.YearDay() {
		timeStr = fi.Modified.Format("15:04:05")
	} else {
		timeStr = fi.Modified.Format("2006-01-02")
	}

	return fmt.Sprintf("%s  (%s, %s)", fi.Name, sizeStr, timeStr)
}

// openFile opens a snapshot in the system image viewer
func (sl *SnapshotList) openFile(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		sl.log.Warn("cannot open files on this platform", "os", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		sl.log.Error("open snapshot", "path", path, "err", err)
	}
}
