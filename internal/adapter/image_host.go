// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
)

type imageHost struct {
	client       *utils.HTTPClient
	uploadURL    string
	uploadPreset string
	folder       string

	logger *logger.Logger
}

// uploadResponse is the subset of the image host's upload response the
// client cares about.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// NewImageHost constructs an [ImageHost] backed by an unsigned-upload HTTP
// endpoint (Cloudinary-style). Returns an error if cfg.UploadURL is empty.
func NewImageHost(cfg config.ClientImageHost, logger *logger.Logger) (ImageHost, error) {
	uploadURL := strings.TrimSpace(cfg.UploadURL)
	if uploadURL == "" {
		return nil, fmt.Errorf("invalid image host config: empty upload url")
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &imageHost{
		client:       client,
		uploadURL:    uploadURL,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
		logger:       logger,
	}, nil
}

// UploadImage implements [ImageHost]. It streams the file as a multipart
// form together with the unsigned upload preset and returns the HTTPS URL
// assigned by the host.
func (i *imageHost) UploadImage(ctx context.Context, filename string, data io.Reader) (string, error) {
	var result uploadResponse

	req := i.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, data).
		SetResult(&result)

	if i.uploadPreset != "" {
		req.SetFormData(map[string]string{"upload_preset": i.uploadPreset})
	}
	if i.folder != "" {
		req.SetFormData(map[string]string{"folder": i.folder})
	}

	resp, err := req.Post(i.uploadURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUploadFailed, filename, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s: http %d: %s",
			ErrUploadFailed, filename, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: %s: host returned no url", ErrUploadFailed, filename)
	}

	return result.SecureURL, nil
}
