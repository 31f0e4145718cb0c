// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImageHost is a function-field test double for adapter.ImageHost.
type fakeImageHost struct {
	uploadFn func(ctx context.Context, filename string, data io.Reader) (string, error)
}

func (f *fakeImageHost) UploadImage(ctx context.Context, filename string, data io.Reader) (string, error) {
	return f.uploadFn(ctx, filename, data)
}

func testFiles(names ...string) []UploadFile {
	files := make([]UploadFile, 0, len(names))
	for _, name := range names {
		files = append(files, UploadFile{Name: name, Data: strings.NewReader("bytes-" + name)})
	}
	return files
}

func TestUploadAll_PreservesInputOrder(t *testing.T) {
	host := &fakeImageHost{
		uploadFn: func(_ context.Context, filename string, _ io.Reader) (string, error) {
			// Let later files finish first to prove ordering does not depend
			// on completion order.
			if filename == "first.jpg" {
				time.Sleep(20 * time.Millisecond)
			}
			return "https://img.example.com/" + filename, nil
		},
	}

	pool := NewUploadPool(host, 4, logger.Nop())
	urls, err := pool.UploadAll(context.Background(), testFiles("first.jpg", "second.jpg", "third.jpg"))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://img.example.com/first.jpg",
		"https://img.example.com/second.jpg",
		"https://img.example.com/third.jpg",
	}, urls)
}

func TestUploadAll_FirstFailureAbortsBatch(t *testing.T) {
	host := &fakeImageHost{
		uploadFn: func(ctx context.Context, filename string, _ io.Reader) (string, error) {
			if filename == "broken.jpg" {
				return "", adapter.ErrUploadFailed
			}
			return "https://img.example.com/" + filename, nil
		},
	}

	pool := NewUploadPool(host, 2, logger.Nop())
	urls, err := pool.UploadAll(context.Background(), testFiles("ok.jpg", "broken.jpg", "never.jpg"))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUploadFailed)
	assert.Contains(t, err.Error(), "broken.jpg")
	assert.Nil(t, urls, "no partial results on failure")
}

func TestUploadAll_FailureCancelsInFlightContext(t *testing.T) {
	var sawCancel atomic.Bool
	release := make(chan struct{})

	host := &fakeImageHost{
		uploadFn: func(ctx context.Context, filename string, _ io.Reader) (string, error) {
			if filename == "broken.jpg" {
				close(release)
				return "", errors.New("host rejected file")
			}
			<-release
			select {
			case <-ctx.Done():
				sawCancel.Store(true)
			case <-time.After(time.Second):
			}
			return "", ctx.Err()
		},
	}

	pool := NewUploadPool(host, 2, logger.Nop())
	_, err := pool.UploadAll(context.Background(), testFiles("slow.jpg", "broken.jpg"))

	require.Error(t, err)
	assert.True(t, sawCancel.Load(), "in-flight upload should observe cancellation")
}

func TestUploadAll_RespectsConcurrencyLimit(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	host := &fakeImageHost{
		uploadFn: func(_ context.Context, filename string, _ io.Reader) (string, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return "https://img.example.com/" + filename, nil
		},
	}

	pool := NewUploadPool(host, 2, logger.Nop())
	_, err := pool.UploadAll(context.Background(), testFiles("a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"))

	require.NoError(t, err)
	assert.LessOrEqual(t, maxInFlight, 2)
}

func TestUploadAll_EmptyBatch(t *testing.T) {
	pool := NewUploadPool(&fakeImageHost{}, 0, logger.Nop())

	urls, err := pool.UploadAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}
