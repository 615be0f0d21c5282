package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

const (
	historyFile      = "history.jsonl"
	projectsDir      = "projects"
	transcriptSuffix = ".jsonl"
	maxLineBytes     = 1024 * 1024
	headerScanLines  = 10
)

// Catalog lists resumable sessions from the claude CLI data directory. A
// session is only listed while its transcript file still exists.
type Catalog struct {
	home   string
	logger *zap.Logger
}

var _ ports.SessionCatalog = (*Catalog)(nil)

func NewCatalog(home string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{home: filepath.Clean(home), logger: logger}
}

func (c *Catalog) ListRecent(ctx context.Context, limit int) ([]domain.Session, error) {
	sessions, err := c.scan(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].LastActivity.Equal(list[j].LastActivity) {
			return list[i].LastActivity.After(list[j].LastActivity)
		}
		return list[i].ID < list[j].ID
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (domain.Session, error) {
	sessions, err := c.scan(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	session, ok := sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

type transcript struct {
	path    string
	modTime time.Time
}

type historyEntry struct {
	Display   string `json:"display"`
	Timestamp int64  `json:"timestamp"`
	Project   string `json:"project"`
	SessionID string `json:"sessionId"`
}

func (c *Catalog) scan(ctx context.Context) (map[string]domain.Session, error) {
	transcripts, err := c.indexTranscripts(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make(map[string]domain.Session, len(transcripts))
	if err := c.readHistory(ctx, func(entry historyEntry) {
		if _, ok := transcripts[entry.SessionID]; !ok {
			return
		}
		at := time.UnixMilli(entry.Timestamp)
		if existing, ok := sessions[entry.SessionID]; ok && existing.LastActivity.After(at) {
			return
		}
		sessions[entry.SessionID] = domain.Session{
			ID:           entry.SessionID,
			DisplayName:  entry.Display,
			CWD:          entry.Project,
			LastActivity: at,
		}
	}); err != nil {
		return nil, err
	}

	for id, t := range transcripts {
		if _, ok := sessions[id]; ok {
			continue
		}
		cwd, err := readTranscriptCWD(t.path)
		if err != nil {
			c.logger.Debug("skip unreadable transcript", zap.String("path", t.path), zap.Error(err))
			continue
		}
		sessions[id] = domain.Session{ID: id, CWD: cwd, LastActivity: t.modTime}
	}

	return sessions, nil
}

func (c *Catalog) indexTranscripts(ctx context.Context) (map[string]transcript, error) {
	root := filepath.Join(c.home, projectsDir)
	projects, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]transcript{}, nil
		}
		return nil, fmt.Errorf("read projects directory: %w", err)
	}

	out := make(map[string]transcript)
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !project.IsDir() {
			continue
		}

		dir := filepath.Join(root, project.Name())
		entries, err := os.ReadDir(dir)
		if err != nil {
			c.logger.Debug("skip unreadable project directory", zap.String("path", dir), zap.Error(err))
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, transcriptSuffix) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}

			id := strings.TrimSuffix(name, transcriptSuffix)
			if existing, ok := out[id]; ok && existing.modTime.After(info.ModTime()) {
				continue
			}
			out[id] = transcript{path: filepath.Join(dir, name), modTime: info.ModTime()}
		}
	}
	return out, nil
}

func (c *Catalog) readHistory(ctx context.Context, visit func(historyEntry)) error {
	f, err := os.Open(filepath.Join(c.home, historyFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open session history: %w", err)
	}
	defer f.Close()

	var ctxErr error
	err = readLines(f, maxLineBytes, func(line []byte) bool {
		if ctxErr = ctx.Err(); ctxErr != nil {
			return false
		}
		var entry historyEntry
		if err := json.Unmarshal(line, &entry); err == nil && entry.SessionID != "" {
			visit(entry)
		}
		return true
	})
	if ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("read session history: %w", err)
	}
	return nil
}

// readTranscriptCWD finds the working directory recorded near the top of a
// transcript. Some transcripts open with snapshot lines that carry no cwd.
func readTranscriptCWD(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var cwd string
	seen := 0
	err = readLines(f, maxLineBytes, func(line []byte) bool {
		var header struct {
			CWD string `json:"cwd"`
		}
		if json.Unmarshal(line, &header) == nil && header.CWD != "" {
			cwd = header.CWD
			return false
		}
		seen++
		return seen < headerScanLines
	})
	if err != nil {
		return "", err
	}
	if cwd == "" {
		return "", errors.New("no working directory recorded")
	}
	return cwd, nil
}

// readLines calls visit for each line of r until it returns false. Lines
// longer than maxBytes are dropped whole. The slice passed to visit is only
// valid during the call.
func readLines(r io.Reader, maxBytes int, visit func(line []byte) bool) error {
	br := bufio.NewReaderSize(r, 64*1024)
	var (
		line      []byte
		truncated bool
	)
	for {
		fragment, more, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !truncated && len(line)+len(fragment) <= maxBytes {
			line = append(line, fragment...)
		} else {
			truncated = true
			line = line[:0]
		}
		if more {
			continue
		}

		skip := truncated
		current := line
		line, truncated = line[:0], false
		if skip {
			continue
		}
		if !visit(current) {
			return nil
		}
	}
}
