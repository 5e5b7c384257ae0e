package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// progressStep is how many bytes pass between progress log lines.
const progressStep = 64 << 20 // 64 MiB

// download streams url into dst, logging progress as data arrives.
// The partial file is removed on any failure.
func (f *Fetcher) download(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("dataset: build request: %w", err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return fmt.Errorf("dataset: download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s for %s", ErrBadStatus, resp.Status, url)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("dataset: create archive file: %w", err)
	}

	pw := &progressWriter{
		log:   f.log().WithField("file", dst),
		total: resp.ContentLength,
	}
	if _, err = io.Copy(io.MultiWriter(out, pw), resp.Body); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("dataset: write archive: %w", err)
	}
	if err = out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("dataset: close archive: %w", err)
	}
	pw.final()

	return nil
}

// progressWriter counts bytes and logs every progressStep of them.
// total is -1 when the server sent no Content-Length.
type progressWriter struct {
	log     *logrus.Entry
	total   int64
	written int64
	next    int64
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.written >= p.next {
		p.next = p.written + progressStep
		fields := logrus.Fields{"received": humanize.Bytes(uint64(p.written))}
		if p.total > 0 {
			fields["size"] = humanize.Bytes(uint64(p.total))
		}
		p.log.WithFields(fields).Info("download progress")
	}

	return len(b), nil
}

// final logs the completed byte count once the copy is done.
func (p *progressWriter) final() {
	p.log.WithField("received", humanize.Bytes(uint64(p.written))).Info("download complete")
}
