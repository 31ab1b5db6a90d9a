package client

import (
	"bufio"
	"io"
	"strings"

	// Packages
	alloy "github.com/alloy-automation/alloy-mcp-go"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// extractEventData returns the payload of the first "data:" line in an
// event-stream body, for servers which answer a POST with one frame of the
// form "event: message\ndata: {...}\n\n". This is deliberately not an
// event-stream parser: it reads at most one data line and ignores event
// names, continuation lines and any later frames.
func extractEventData(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			return []byte(data), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, alloy.ErrBadParameter.With("no data line in event-stream response")
}
