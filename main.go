package main

import (
	"io"
	"log"
	"os"
	"sync"

	"kms-key-replicator/config"
	"kms-key-replicator/driverset"
	"kms-key-replicator/handler"
	"kms-key-replicator/notifier"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	c, err := config.NewFromEnv()
	if err != nil {
		logger.Fatalf("Error loading configuration: %s", err)
	}

	dsFactory := driverset.NewFactory(sharedWriter, c.Credentials)
	cfnNotifier := notifier.NewCloudFormationNotifier(sharedWriter)

	h := handler.New(sharedWriter, c, dsFactory, cfnNotifier)

	lambda.Start(h.Handle)
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
