package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string // DEV (local; default), TEST, QA, PROD
	Debug        bool
	TestMode     bool
	AppName      string
	Build        string
	RollbarToken string
	WorkDir      string

	Server struct {
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	Institution struct {
		Name        string
		EmailDomain string
	}

	GPA struct {
		// StrictGrades rejects unknown grade symbols instead of counting them as 0.0 points
		StrictGrades bool
	}
}

// NewConfig loads the configuration from the environment (and `config/.env.<env>` if it exists).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Masomo")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugAddress", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("institutionName", "MNS University of Agriculture, Multan")
	conf.SetDefault("institutionEmailDomain", "mnsuam.edu.pk")
	conf.SetDefault("gpaStrictGrades", false)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		WorkDir:      wd,
	}
	c.Server.Address = conf.GetString("serverAddress")
	c.Server.DebugAddress = conf.GetString("serverDebugAddress")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	c.Server.DisableReqLogs = conf.GetBool("serverDisableReqLogs")
	c.Institution.Name = conf.GetString("institutionName")
	c.Institution.EmailDomain = CleanString(conf.GetString("institutionEmailDomain"), true /* lower */)
	c.GPA.StrictGrades = conf.GetBool("gpaStrictGrades")
	return c
}
