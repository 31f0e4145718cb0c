// Package workers provides background execution helpers for the client
// application.
//
// Its main component is [UploadPool], which pushes a batch of listing photos
// to the image host concurrently while preserving the order the user chose
// for them. Uploads are all-or-nothing: the first failure cancels the
// remaining ones and the whole batch is reported as failed, so a listing is
// never published with a partial photo set.
package workers

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/logger"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds simultaneous uploads when no explicit limit is
// configured. Image hosts throttle aggressive clients, so the pool stays
// modest.
const defaultConcurrency = 3

// UploadFile is a single photo queued for upload: the filename reported to
// the host and the reader holding its bytes.
type UploadFile struct {
	Name string
	Data io.Reader
}

// UploadPool uploads batches of images through an [adapter.ImageHost] with
// bounded concurrency.
type UploadPool struct {
	host        adapter.ImageHost
	concurrency int

	logger *logger.Logger
}

// NewUploadPool constructs an UploadPool on top of the given image host.
// A non-positive concurrency falls back to the pool default.
func NewUploadPool(host adapter.ImageHost, concurrency int, logger *logger.Logger) *UploadPool {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &UploadPool{host: host, concurrency: concurrency, logger: logger}
}

// UploadAll uploads every file concurrently and returns the resulting URLs
// in the same order as the input. If any upload fails the context handed to
// the in-flight ones is cancelled and the first error is returned; no URLs
// are returned in that case.
func (p *UploadPool) UploadAll(ctx context.Context, files []UploadFile) ([]string, error) {
	urls := make([]string, len(files))
	if len(files) == 0 {
		return urls, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, file := range files {
		g.Go(func() error {
			url, err := p.host.UploadImage(ctx, file.Name, file.Data)
			if err != nil {
				return fmt.Errorf("upload %q: %w", file.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Debug().Int("count", len(urls)).Msg("image batch uploaded")
	return urls, nil
}
