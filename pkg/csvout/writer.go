package csvout

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"pkg.jsn.cam/cdrgen/pkg/cdr"
)

const writeBufferSize = 1 << 20

var newline = []byte("\n")

// Option configures Write and WriteFile.
type Option func(*options)

type options struct {
	log      zerolog.Logger
	progress cdr.Progress
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets where WriteFile reports success and failure.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithProgress reports each written data row to p.
func WithProgress(p cdr.Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// AppendRecord appends one formatted row, without line terminator, to dst.
func AppendRecord(dst []byte, r cdr.CallRecord) []byte {
	dst = r.Start.AppendFormat(dst, TimeLayout)
	dst = append(dst, ',')
	dst = r.End.AppendFormat(dst, TimeLayout)
	dst = append(dst, ',')
	dst = append(dst, EscapeField(r.TowerID)...)
	dst = append(dst, ',')
	dst = append(dst, EscapeField(r.TowerName)...)
	dst = append(dst, ',')
	dst = append(dst, EscapeField(r.FromNumber)...)
	dst = append(dst, ',')
	dst = append(dst, EscapeField(r.ToNumber)...)
	return dst
}

// FormatRecord returns one formatted row without line terminator.
func FormatRecord(r cdr.CallRecord) string {
	return string(AppendRecord(nil, r))
}

// Write emits the header and one line per record to w.
// The caller owns w; Write neither buffers nor closes it.
func Write(w io.Writer, records []cdr.CallRecord, opts ...Option) error {
	o := newOptions(opts)

	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrIOFailure, err)
	}

	line := make([]byte, 0, 256)
	for i, r := range records {
		line = AppendRecord(line[:0], r)
		line = append(line, newline...)
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("%w: write record %d: %v", ErrIOFailure, i, err)
		}
		if o.progress != nil {
			_ = o.progress.Add(1)
		}
	}
	return nil
}

// WriteFile creates or truncates path and writes records to it.
//
// Failures are logged and returned wrapping ErrIOFailure; the file is always
// flushed and closed, and may be left truncated after a mid-write failure.
func WriteFile(path string, records []cdr.CallRecord, opts ...Option) (err error) {
	o := newOptions(opts)
	log := o.log.With().Str("path", path).Logger()

	defer func() {
		if err != nil {
			log.Error().Err(err).Msg("Error writing CSV file")
		}
	}()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	closed := false
	defer func() {
		if !closed {
			_ = file.Close()
		}
	}()

	bw := bufio.NewWriterSize(file, writeBufferSize)
	if err := Write(bw, records, opts...); err != nil {
		// Push out whatever was buffered so the partial file reflects progress.
		_ = bw.Flush()
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrIOFailure, err)
	}

	info, statErr := file.Stat()
	closed = true
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrIOFailure, err)
	}

	event := log.Info().Str("records", humanize.Comma(int64(len(records))))
	if statErr == nil {
		event = event.Str("size", humanize.Bytes(uint64(info.Size())))
	}
	event.Msgf("CSV file created successfully at %s", path)
	return nil
}
