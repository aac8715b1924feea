package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

// DefaultMaxConcurrentReplications bounds the worker pool when
// MAX_CONCURRENT_REPLICATIONS is unset or blank
const DefaultMaxConcurrentReplications = 3

const maxConcurrentReplicationsVar = "MAX_CONCURRENT_REPLICATIONS"

type Config struct {
	MaxConcurrentReplications int
	Credentials               Credentials
}

type Credentials struct {
	AccessKey string
	SecretKey string
	RoleArn   string
	Region    string
}

// NewFromEnv reads the handler configuration once at cold start. Credentials
// are optional; when absent the SDK falls back to the instance profile.
func NewFromEnv() (Config, error) {
	c := Config{
		MaxConcurrentReplications: DefaultMaxConcurrentReplications,
		Credentials: Credentials{
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			RoleArn:   os.Getenv("AWS_ROLE_ARN"),
			Region:    os.Getenv("AWS_REGION"),
		},
	}

	if raw := os.Getenv(maxConcurrentReplicationsVar); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %s", maxConcurrentReplicationsVar, err)
		}
		c.MaxConcurrentReplications = workers
	}

	err := c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (config *Config) validate() error {
	if config.MaxConcurrentReplications < 1 {
		return errors.New("MAX_CONCURRENT_REPLICATIONS must be at least 1")
	}

	return nil
}

func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}
