package client

import (
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_event_001(t *testing.T) {
	// The payload of the first data line is returned
	assert := assert.New(t)

	body := "event: message\ndata: {\"jsonrpc\":\"2.0\",\"id\":1}\n\n"
	data, err := extractEventData(strings.NewReader(body))
	assert.NoError(err)
	assert.Equal(`{"jsonrpc":"2.0","id":1}`, string(data))
}

func Test_event_002(t *testing.T) {
	// Carriage returns are stripped before matching
	assert := assert.New(t)

	body := "event: message\r\ndata: {\"id\":2}\r\n\r\n"
	data, err := extractEventData(strings.NewReader(body))
	assert.NoError(err)
	assert.Equal(`{"id":2}`, string(data))
}

func Test_event_003(t *testing.T) {
	// A body without a data line is an error
	assert := assert.New(t)

	body := "event: message\n\n"
	_, err := extractEventData(strings.NewReader(body))
	assert.Error(err)
}

func Test_event_004(t *testing.T) {
	// Lines using the field name without a following space are not matched
	assert := assert.New(t)

	body := "data:{\"id\":4}\n\n"
	_, err := extractEventData(strings.NewReader(body))
	assert.Error(err)
}

func Test_event_005(t *testing.T) {
	// Only the first data line is read; later frames are ignored
	assert := assert.New(t)

	body := "event: message\ndata: {\"id\":5}\n\nevent: message\ndata: {\"id\":6}\n\n"
	data, err := extractEventData(strings.NewReader(body))
	assert.NoError(err)
	assert.Equal(`{"id":5}`, string(data))
}
