package core

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := GenerateID()
		if _, ok := seen[id]; ok {
			t.Fatalf("GenerateID() returned duplicate %q after %d calls", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateID_timePrefix(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return ts }
	defer func() { nowFunc = time.Now }() // reset

	prefix := strconv.FormatInt(ts.UnixNano()/int64(time.Millisecond), 36)
	id := GenerateID()
	assert.Len(t, id, len(prefix)+12)
	assert.Equal(t, prefix, id[:len(prefix)])
	assert.NotEqual(t, id, GenerateID())
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Ali Khan", CleanString("  Ali Khan\n"))
	assert.Equal(t, "ali@mnsuam.edu.pk", CleanString(" ALI@mnsuam.edu.pk ", true))
	assert.Equal(t, "", CleanString("   ", true))
}

func TestGetwd(t *testing.T) {
	wd := Getwd()
	_, err := os.Stat(filepath.Join(wd, "go.mod"))
	assert.NoError(t, err)
}
