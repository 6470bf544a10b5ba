package common

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/natcap/ecoshard-services/util/logger"
	"github.com/op/go-logging"
)

// Context carries the config, the run-scoped logger, and the shared
// object-store clients. Every component takes a *Context instead of
// reaching for process-wide state.
type Context struct {
	Config    *Config
	Logger    *logging.Logger
	S3Clients map[string]*minio.Client
}

func NewContext() *Context {
	config := NewConfig()
	_logger := getLogger(config)
	return &Context{
		Config:    config,
		Logger:    _logger,
		S3Clients: getS3Clients(config),
	}
}

func getLogger(config *Config) *logging.Logger {
	log, _ := logger.InitLogger(config.LogDir, config.LogLevel)
	return log
}

func getS3Clients(config *Config) map[string]*minio.Client {
	s3Clients := make(map[string]*minio.Client, len(config.S3Credentials))
	useSSL := true
	if config.ConfigName == "dev" || config.ConfigName == "test" {
		useSSL = false // talking to localhost in dev and test
	}
	for provider, creds := range config.S3Credentials {
		if creds.Host == "" {
			continue
		}
		client, err := minio.New(
			creds.Host,
			&minio.Options{
				Creds:  credentials.NewStaticV4(creds.KeyID, creds.SecretKey, ""),
				Secure: useSSL,
			})
		if err != nil {
			panic(err)
		}
		s3Clients[provider] = client
	}
	return s3Clients
}
