package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestNewConfig(t *testing.T) {
	setenv(t, "ENV", "test")
	setenv(t, "TEST_INSTITUTIONEMAILDOMAIN", " Example.EDU ")
	setenv(t, "TEST_GPASTRICTGRADES", "true")
	setenv(t, "TEST_SERVERSHUTDOWNTIMEOUT", "10s")

	conf := NewConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "Masomo", conf.AppName)
	assert.Equal(t, ":8000", conf.Server.Address)
	assert.Equal(t, 10*time.Second, conf.Server.ShutdownTimeout)
	assert.Equal(t, "example.edu", conf.Institution.EmailDomain)
	assert.True(t, conf.GPA.StrictGrades)
}

func TestNewConfig_defaults(t *testing.T) {
	setenv(t, "ENV", "qa")

	conf := NewConfig()
	assert.Equal(t, "QA", conf.Env)
	assert.False(t, conf.TestMode)
	assert.Equal(t, "mnsuam.edu.pk", conf.Institution.EmailDomain)
	assert.False(t, conf.GPA.StrictGrades)
	assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
}
