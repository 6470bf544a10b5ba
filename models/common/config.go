package common

import (
	"fmt"
	"os"
	"time"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/natcap/ecoshard-services/util"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

type S3Credentials struct {
	Host      string
	KeyID     string
	SecretKey string
}

type Config struct {
	ConfigName    string
	WorkspaceDir  string
	ChurnDir      string
	EcoshardDir   string
	LogDir        string
	LogLevel      logging.Level
	Workers       int
	FetchTimeout  time.Duration
	S3Credentials map[string]S3Credentials
}

var logLevels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// NewConfig returns a new config based on env vars ECOSHARD_CONFIG_DIR
// and ECOSHARD_ENV.
func NewConfig() *Config {
	config := loadConfig()
	config.expandPaths()
	config.sanityCheck()
	config.makeDirs()
	return config
}

func loadConfig() *Config {
	configDir, envName := getEnvVars()
	v := viper.New()
	v.AddConfigPath(configDir)
	v.SetConfigName(".env." + envName)
	v.SetConfigType("env")
	v.SetDefault("WORKERS", 4)
	v.SetDefault("FETCH_TIMEOUT", 20*time.Minute)
	v.SetDefault("LOG_LEVEL", "DEBUG")
	err := v.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %s \n", err))
	}
	return &Config{
		ConfigName:   envName,
		WorkspaceDir: v.GetString("WORKSPACE_DIR"),
		ChurnDir:     v.GetString("CHURN_DIR"),
		EcoshardDir:  v.GetString("ECOSHARD_DIR"),
		LogDir:       v.GetString("LOG_DIR"),
		LogLevel:     logLevels[v.GetString("LOG_LEVEL")],
		Workers:      v.GetInt("WORKERS"),
		FetchTimeout: v.GetDuration("FETCH_TIMEOUT"),
		S3Credentials: map[string]S3Credentials{
			constants.S3ClientGoogle: {
				Host:      v.GetString("S3_GOOGLE_HOST"),
				KeyID:     v.GetString("S3_GOOGLE_KEY"),
				SecretKey: v.GetString("S3_GOOGLE_SECRET"),
			},
			constants.S3ClientLocal: {
				Host:      v.GetString("S3_LOCAL_HOST"),
				KeyID:     v.GetString("S3_LOCAL_KEY"),
				SecretKey: v.GetString("S3_LOCAL_SECRET"),
			},
		},
	}
}

func getEnvVars() (string, string) {
	configDir := getRequiredEnvVar("ECOSHARD_CONFIG_DIR")
	envName := getRequiredEnvVar("ECOSHARD_ENV")
	return configDir, envName
}

func getRequiredEnvVar(varName string) string {
	value := os.Getenv(varName)
	if value == "" {
		panic(fmt.Sprintf("Required env var %s not set", varName))
	}
	return value
}

// Expand ~ to home dir in path settings.
func (c *Config) expandPaths() {
	c.WorkspaceDir = expandPath(c.WorkspaceDir)
	c.ChurnDir = expandPath(c.ChurnDir)
	c.EcoshardDir = expandPath(c.EcoshardDir)
	c.LogDir = expandPath(c.LogDir)
}

func expandPath(dirName string) string {
	dir, err := util.ExpandTilde(dirName)
	if err != nil {
		panic(err)
	}
	return dir
}

func (c *Config) sanityCheck() {
	if c.WorkspaceDir == "" {
		panic("Config is missing WORKSPACE_DIR")
	}
	if c.EcoshardDir == "" {
		panic("Config is missing ECOSHARD_DIR")
	}
	if c.Workers < 1 {
		panic(fmt.Sprintf("WORKERS must be at least 1, got %d", c.Workers))
	}
}

func (c *Config) makeDirs() {
	dirs := []string{
		c.WorkspaceDir,
		c.ChurnDir,
		c.EcoshardDir,
		c.LogDir,
	}
	for _, dir := range dirs {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			panic(err)
		}
	}
}
