package usagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/goccy/go-json"
)

// usageFile is the persisted form of the counter.
type usageFile struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FileStore persists the usage counter as a small JSON file.
// Writes go to a temp file in the same directory which is synced and renamed over
// the target, so a crash never leaves a truncated file behind.
type FileStore struct {
	path string
	loc  *time.Location
}

// NewFileStore creates a FileStore. Dates are interpreted in loc.
func NewFileStore(path string, loc *time.Location) FileStore {
	return FileStore{path: path, loc: loc}
}

// LoadUsage implements domain.UsageRepository.
func (s FileStore) LoadUsage(ctx context.Context) (domain.UsageCounter, bool, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.UsageCounter{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UsageCounter{}, false, domain.NewPersistenceErr("read usage file", err)
	}

	var stored usageFile
	err = json.Unmarshal(data, &stored)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UsageCounter{}, false, domain.NewPersistenceErr("decode usage file", err)
	}

	counter, err := s.toCounter(stored)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UsageCounter{}, false, domain.NewPersistenceErr("invalid usage file", err)
	}
	return counter, true, nil
}

func (s FileStore) toCounter(stored usageFile) (domain.UsageCounter, error) {
	if strings.TrimSpace(stored.Date) == "" {
		return domain.UsageCounter{}, errors.New("missing date")
	}
	if stored.Count < 0 {
		return domain.UsageCounter{}, fmt.Errorf("negative count %d", stored.Count)
	}
	date, err := dateparse.ParseIn(stored.Date, s.loc)
	if err != nil {
		return domain.UsageCounter{}, fmt.Errorf("parse date %q: %w", stored.Date, err)
	}
	return domain.UsageCounter{Date: domain.DateOnly(date.In(s.loc)), Count: stored.Count}, nil
}

// SaveUsage implements domain.UsageRepository.
func (s FileStore) SaveUsage(ctx context.Context, counter domain.UsageCounter) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	data, err := json.Marshal(usageFile{
		Date:  counter.Date.Format(domain.UsageDateLayout),
		Count: counter.Count,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewPersistenceErr("encode usage", err)
	}

	err = writeFileAtomic(s.path, data)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewPersistenceErr("write usage file", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
