package driver

import (
	"fmt"
	"io"
	"log"
	"time"

	"kms-key-replicator/config"
	"kms-key-replicator/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/kms"
)

// SDKKeyPolicyDriver reads the policy document attached to a KMS key.
// A single failed attempt fails the whole invocation; there is no retry
// beyond what the SDK performs internally.
type SDKKeyPolicyDriver struct {
	creds     config.Credentials
	kmsClient *kms.KMS
	logger    *log.Logger
}

func NewKeyPolicyDriver(logDest io.Writer, creds config.Credentials) *SDKKeyPolicyDriver {
	logger := log.New(logDest, "KeyPolicyDriver ", log.LstdFlags)

	return &SDKKeyPolicyDriver{creds: creds, logger: logger}
}

func (d *SDKKeyPolicyDriver) Fetch(driverConfig resources.KeyPolicyDriverConfig) (resources.KeyPolicy, error) {
	fetchStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("Completed GetKeyPolicy() in %f seconds\n", time.Since(startTime).Seconds())
	}(fetchStartTime)

	d.logger.Printf("Fetching policy for kms key: %s\n", driverConfig.KmsKeyId)
	output, err := d.client().GetKeyPolicy(&kms.GetKeyPolicyInput{
		KeyId:      &driverConfig.KmsKeyId,
		PolicyName: aws.String(resources.DefaultPolicyName),
	})
	if err != nil {
		return "", fmt.Errorf("fetching key policy for %s: %s", driverConfig.KmsKeyId, err)
	}

	if output.Policy == nil || *output.Policy == "" {
		return "", fmt.Errorf("fetching key policy for %s: empty policy document", driverConfig.KmsKeyId)
	}

	return resources.KeyPolicy(*output.Policy), nil
}

func (d *SDKKeyPolicyDriver) client() *kms.KMS {
	if d.kmsClient == nil {
		awsConfig := d.creds.GetAwsConfig().
			WithLogger(newDriverLogger(d.logger))

		d.kmsClient = kms.New(session.Must(session.NewSession(awsConfig)))
	}

	return d.kmsClient
}
