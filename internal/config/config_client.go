package config

import (
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the go-estate API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientImageHost holds the external image-hosting settings the client
// uploads listing photos with.
type ClientImageHost struct {
	// UploadURL is the full upload endpoint of the image host.
	UploadURL string
	// UploadPreset is the unsigned upload preset identifier.
	UploadPreset string
	// Folder is the remote folder photos are uploaded into.
	Folder string
	// RequestTimeout bounds a single upload request.
	RequestTimeout time.Duration
	// UploadConcurrency caps parallel photo uploads for one listing.
	UploadConcurrency int
}

// ClientConfig is the terminal client's view of the merged configuration
// sources. Only the fields relevant to the client runtime are mapped.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// ImageHost contains image upload settings.
	ImageHost ClientImageHost
	// LogFilePath is where the client writes its logs.
	LogFilePath string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		ImageHost: ClientImageHost{
			UploadURL:         cfg.ImageHost.UploadURL,
			UploadPreset:      cfg.ImageHost.UploadPreset,
			Folder:            cfg.ImageHost.Folder,
			RequestTimeout:    cfg.ImageHost.RequestTimeout,
			UploadConcurrency: cfg.ImageHost.UploadConcurrency,
		},
		LogFilePath: cfg.Client.LogFilePath,
	}

	return clientCfg, clientCfg.validate()
}
