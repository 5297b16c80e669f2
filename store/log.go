package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ArchivedLog tracks which game IDs have already been archived. It is an
// append-only file with one decimal game ID per line: loaded into memory on
// open for fast dedupe, appended and fsynced on success.
//
// A crash mid-write can leave a partial final line; it is skipped on the
// next open. This is a dedupe list, not a general-purpose WAL.
type ArchivedLog struct {
	mu       sync.RWMutex
	path     string
	file     *os.File
	archived map[uint64]struct{}
}

func OpenArchivedLog(path string) (*ArchivedLog, error) {
	if path == "" {
		return nil, fmt.Errorf("log path is required")
	}

	archived := make(map[uint64]struct{})
	if f, err := os.Open(path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			id, err := strconv.ParseUint(line, 10, 64)
			if err != nil {
				continue
			}
			archived[id] = struct{}{}
		}
		_ = f.Close()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &ArchivedLog{
		path:     path,
		file:     file,
		archived: archived,
	}, nil
}

func (l *ArchivedLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *ArchivedLog) Has(gameID uint64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.archived[gameID]
	return ok
}

func (l *ArchivedLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.archived)
}

func (l *ArchivedLog) Add(gameID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.archived[gameID]; ok {
		return nil
	}
	if l.file == nil {
		return fmt.Errorf("log file is closed")
	}

	if _, err := l.file.WriteString(strconv.FormatUint(gameID, 10) + "\n"); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log: %w", err)
	}

	l.archived[gameID] = struct{}{}
	return nil
}

// AddMany appends several game IDs and syncs once. Known IDs are skipped.
func (l *ArchivedLog) AddMany(gameIDs []uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("log file is closed")
	}

	added := 0
	for _, id := range gameIDs {
		if _, ok := l.archived[id]; ok {
			continue
		}
		if _, err := l.file.WriteString(strconv.FormatUint(id, 10) + "\n"); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		l.archived[id] = struct{}{}
		added++
	}
	if added == 0 {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log: %w", err)
	}
	return nil
}
