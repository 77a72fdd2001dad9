package timestamps

import (
	"fmt"
	"io/fs"
	"time"

	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

// Reader reads filesystem timestamps from stat data. Modification time is
// always available; creation and access time depend on the platform.
type Reader struct{}

func (Reader) Timestamp(path string, info fs.FileInfo, selector domain.TimestampSelector) (time.Time, error) {
	switch selector {
	case domain.Modified:
		return info.ModTime(), nil
	case domain.Accessed:
		return accessTime(path, info)
	case domain.Created:
		return birthTime(path, info)
	default:
		return time.Time{}, fmt.Errorf("%s: %w", selector, appErrors.ErrMetadataUnavailable)
	}
}
