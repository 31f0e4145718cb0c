package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()
	assert.NotNil(t, client)
	assert.NotNil(t, client.Client)
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	first.SetBaseURL("http://first.example")
	second.SetBaseURL("http://second.example")

	assert.NotEqual(t, first.BaseURL, second.BaseURL)
}
