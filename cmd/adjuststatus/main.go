package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spatialid/adjuststatus/internal/handler"
	"github.com/spatialid/adjuststatus/internal/logging"
	"github.com/spatialid/adjuststatus/internal/secrets"
)

func main() {
	logger := logging.Setup(os.Getenv("ADJUST_LOG_LEVEL"))

	configPath := os.Getenv("ADJUST_CONFIG_PATH")
	if configPath == "" {
		configPath = "config.properties"
	}

	h := handler.New(handler.Options{
		ConfigPath: configPath,
		Migrate:    os.Getenv("ADJUST_MIGRATE") == "true",
	}, secrets.NewCache(nil), logger)

	logger.Info("adjust status function initialized", "config_path", configPath)
	lambda.Start(h.HandleRequest)
}
