package logger

import (
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogsFiltersAndOrders(t *testing.T) {
	t.Setenv("MOVIELIST_LOG_FOLDER", t.TempDir())
	InitLogger(logging.DEBUG)
	defer CloseLogger()

	Debug("buffered debug entry")
	Info("buffered info entry")
	Error("buffered error entry")

	logs := GetLogs(50, "INFO")
	assert.True(t, containsEntry(logs, "buffered info entry"))
	assert.True(t, containsEntry(logs, "buffered error entry"))
	assert.False(t, containsEntry(logs, "buffered debug entry"))

	// Newest first.
	all := GetLogs(50, "DEBUG")
	assert.True(t, containsEntry(all, "buffered debug entry"))
	assert.Contains(t, all[0], "buffered error entry")
}

func containsEntry(logs []string, substr string) bool {
	for _, line := range logs {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
