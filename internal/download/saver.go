// ABOUTME: WAV download writer and HTTP attachment handler
// ABOUTME: Persists encoded audio under a caller-supplied file name
package download

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/visionboard/visionboard-go/pkg/audio/encode"
)

// DefaultFileName is the name offered for the story audio
const DefaultFileName = "BucTranhMucTieu.wav"

// Saver writes audio blobs into a directory
type Saver struct {
	dir string

	mu          sync.Mutex
	currentPath string
}

// NewSaver creates a saver rooted at dir, creating it if needed
func NewSaver(dir string) (*Saver, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Saver{
		dir: dir,
	}, nil
}

// Save writes blob as name inside the output directory and returns its path.
// The file appears atomically; a partially written file is never visible.
func (s *Saver) Save(blob []byte, name string) (string, error) {
	path := filepath.Join(s.dir, FileName(name))

	tmp := filepath.Join(s.dir, "."+uuid.New().String()+".part")
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write audio: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to save audio: %w", err)
	}

	log.Printf("Audio saved: %s (%d bytes)", path, len(blob))
	s.mu.Lock()
	s.currentPath = path
	s.mu.Unlock()
	return path, nil
}

// CurrentPath returns the path of the last saved file
func (s *Saver) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPath
}

// Dir returns the output directory
func (s *Saver) Dir() string {
	return s.dir
}

// FileName reduces name to a bare file name with a .wav extension
func FileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = DefaultFileName
	}
	if !strings.EqualFold(filepath.Ext(name), ".wav") {
		name += ".wav"
	}
	return name
}

// Handler serves blob as a WAV attachment named name.
// Non-ASCII names are sent in the RFC 2231 filename* form.
func Handler(blob []byte, name string) http.Handler {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": FileName(name)})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", encode.MIMEType)
		w.Header().Set("Content-Disposition", disposition)
		w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
		if r.Method == http.MethodHead {
			return
		}
		w.Write(blob)
	})
}
