package assets

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Piece packs let players drop their own PNG sprites into a directory
// and stack them without recompiling. Pack pieces live under a "pack/"
// prefix so they can never collide with builtin ids.
const packPrefix = "pack/"

// packPieceID maps a file path to its registry id, or "" when the file
// is not piece artwork.
func packPieceID(path string) string {
	if !isPieceArt(path) {
		return ""
	}
	base := filepath.Base(path)
	return packPrefix + strings.TrimSuffix(base, filepath.Ext(base))
}

func isPieceArt(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".png"
}

// LoadPack registers every PNG under dir and returns how many it found.
// A missing directory is not an error; the player simply has no custom
// pieces. Corrupt files are registered anyway so the shape cache can
// report them and fall back to a box.
func LoadPack(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: reading piece pack %s: %v", dir, err)
		}
		return 0
	}
	n := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id := syncPackFile(filepath.Join(dir, entry.Name())); id != "" {
			n++
		}
	}
	return n
}

// syncPackFile mirrors one file into the registry: present on disk
// means registered, gone means unregistered. Returns the affected piece
// id, or "" when the path is not piece artwork or could not be read.
func syncPackFile(path string) string {
	id := packPieceID(path)
	if id == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			Unregister(id)
			return id
		}
		log.Printf("Warning: reading piece %s: %v", path, err)
		return ""
	}
	Register(id, data)
	return id
}

// PackWatcher watches a piece pack directory and mirrors file changes
// into the registry as they happen. Events carries the id of each
// changed piece so callers can invalidate derived state such as cached
// collision shapes.
type PackWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewPackWatcher(dir string) (*PackWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	pw := &PackWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

func (w *PackWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *PackWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isPieceArt(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			if id := syncPackFile(event.Name); id != "" {
				w.Events <- id
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}
