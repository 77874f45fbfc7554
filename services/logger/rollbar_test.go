package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-gpa/core"
)

func newTestLogger(buf *bytes.Buffer) *RollbarLogger {
	return NewRollbarLogger(log.New(buf, "TEST : ", 0), &core.Config{Env: "TEST"})
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := newTestLogger(new(bytes.Buffer))
	err := errors.New("boom")
	first := map[string]interface{}{"path": "/v1/gpa"}
	second := map[string]interface{}{"ignored": true}

	got := l.prepare("msg", []interface{}{err, first, second})
	assert.Equal(t, []interface{}{"msg", err, first}, got)
}

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Info("server started", map[string]interface{}{"addr": ":8000"})
	l.Error("failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "TEST : server started\n")
	assert.Contains(t, out, "map[addr::8000]")
	assert.Contains(t, out, "TEST : failed\n")
	assert.Contains(t, out, "boom")
}
