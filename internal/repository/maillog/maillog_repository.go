package maillog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// SettingsGetter resolves site settings, used for the sender address.
type SettingsGetter interface {
	Get(ctx context.Context, key, defaultValue string) string
}

// FileRepository is the notification sink: instead of calling a mail
// provider it appends one JSON record per line to a local log file. The
// admin email viewer reads the same file back.
type FileRepository struct {
	path     string
	settings SettingsGetter
}

func NewFileRepository(path string, settings SettingsGetter) *FileRepository {
	return &FileRepository{
		path:     path,
		settings: settings,
	}
}

// SendEmail appends the rendered message to the mail log.
func (r *FileRepository) SendEmail(toName, toEmail, subject, message string) error {
	from := r.settings.Get(context.Background(), domain.SettingSenderEmail, domain.DefaultSenderEmail)

	record := domain.EmailRecord{
		Time:    time.Now(),
		From:    from,
		To:      toEmail,
		Subject: subject,
		Content: message,
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal email record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open mail log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append to mail log: %w", err)
	}

	return nil
}

// ReadAll returns logged emails newest first. Lines that do not parse are
// skipped rather than failing the whole read.
func (r *FileRepository) ReadAll(ctx context.Context) ([]domain.EmailRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.EmailRecord{}, nil
		}
		return nil, fmt.Errorf("failed to open mail log: %w", err)
	}
	defer f.Close()

	var records []domain.EmailRecord

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record domain.EmailRecord
		if err := json.Unmarshal(line, &record); err != nil {
			logger.Warn("Skipping corrupt mail log line", err)
			continue
		}

		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mail log: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})

	return records, nil
}
