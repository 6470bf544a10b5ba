package logger

import (
	"io"

	"github.com/op/go-logging"
)

const _100MB = int64(104857600)
const _1GB = int64(1073741824)
const _10GB = int64(10737418240)

// ProgressReader wraps a download stream and logs how far along the
// transfer is, trying not to be too verbose. Small files never log;
// big ones log at intervals scaled to their size.
type ProgressReader struct {
	reader         io.Reader
	logger         *logging.Logger
	prefix         string
	totalSize      int64
	bytesRead      int64
	lastPctPrinted float64
}

// NewProgressReader wraps reader. Param totalSize is the expected size
// of the whole stream, or -1 when the server didn't say; unknown sizes
// are passed through silently.
func NewProgressReader(reader io.Reader, logger *logging.Logger, prefix string, totalSize int64) *ProgressReader {
	return &ProgressReader{
		reader:    reader,
		logger:    logger,
		prefix:    prefix,
		totalSize: totalSize,
	}
}

func (r *ProgressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 && r.totalSize > 0 {
		r.bytesRead += int64(n)
		pctComplete := (float64(r.bytesRead) / float64(r.totalSize)) * 100
		if r.shouldPrint(pctComplete) {
			r.logger.Infof("%s : %d of %d bytes, %3.2f%% complete",
				r.prefix, r.bytesRead, r.totalSize, pctComplete)
			r.lastPctPrinted = pctComplete
		}
	}
	return n, err
}

// shouldPrint returns true when enough progress has accumulated since
// the last message. A multi-gigabyte DEM can arrive in tens of
// thousands of reads and we don't want a log line for each one.
func (r *ProgressReader) shouldPrint(pctComplete float64) bool {
	diff := pctComplete - r.lastPctPrinted
	if r.totalSize > _10GB {
		return diff >= 1.0
	}
	if r.totalSize > _1GB {
		return diff >= 5.0
	}
	if r.totalSize > _100MB {
		return diff >= 20.0
	}
	return false
}
