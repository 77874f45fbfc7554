package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nowFunc = time.Now // mockable

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// GenerateID returns an opaque token for keying course rows & the like.
// It is a base36 millisecond timestamp followed by 12 base36 chars taken from a random UUID;
// it is unique enough for interactive use but must not be used as a secret.
func GenerateID() string {
	prefix := strconv.FormatInt(nowFunc().UnixNano()/int64(time.Millisecond), 36)

	rnd := uuid.New()
	var n uint64
	for _, b := range rnd[8:] {
		n = n<<8 | uint64(b)
	}
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) < 12 {
		suffix = strings.Repeat("0", 12-len(suffix)) + suffix
	}
	return prefix + suffix[:12]
}

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run during tests,
// so we walk up from there. It falls back to the current working directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
