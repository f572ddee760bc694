package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RevanthDadi9/analyzer/internal/extract"
	"github.com/RevanthDadi9/analyzer/internal/relay"
	"github.com/RevanthDadi9/analyzer/internal/shared/metrics"
	"github.com/RevanthDadi9/analyzer/internal/shared/storage/object"
	"github.com/RevanthDadi9/analyzer/internal/shared/telemetry"
)

// ErrEmptyUpload is returned when the uploaded file has no content.
var ErrEmptyUpload = errors.New("uploaded file is empty")

// Service runs the upload pipeline: store the file, extract its text,
// relay the text to the analyzer, and reclaim the stored file.
type Service struct {
	Store object.ObjectStore
	Relay relay.Client
}

// Process handles one uploaded file and returns the analyzer's JSON
// verbatim. The stored object is deleted on every exit path; a failed
// delete is logged and never fails the request.
func (s *Service) Process(ctx context.Context, fileName string, declaredType string, r io.Reader) (json.RawMessage, error) {
	storageKey, size, sniffedType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return nil, fmt.Errorf("save upload %s: %w", fileName, err)
	}
	defer func() {
		if err := s.Store.Delete(context.WithoutCancel(ctx), storageKey); err != nil {
			telemetry.Error("upload.cleanup.failed", map[string]any{
				"storage_key": storageKey,
				"err":         err.Error(),
			})
		}
	}()

	if size == 0 {
		return nil, ErrEmptyUpload
	}

	mediaType := declaredType
	if mediaType == "" {
		mediaType = sniffedType
	}

	body, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("open upload key=%s: %w", storageKey, err)
	}
	raw, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		return nil, fmt.Errorf("read upload key=%s: %w", storageKey, err)
	}

	text, err := extract.FromBytes(raw, mediaType, fileName)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.Relay.Analyze(ctx, text)
	metrics.ObserveRelayDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		return nil, err
	}

	return result, nil
}
