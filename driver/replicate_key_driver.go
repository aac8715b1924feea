package driver

import (
	"fmt"
	"io"
	"log"
	"time"

	"kms-key-replicator/config"
	"kms-key-replicator/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/kms"
)

// SDKReplicateKeyDriver replicates a multi-region KMS key into target
// regions. The KMS client is constructed lazily on the first replication and
// reused for every subsequent task handled by the same driver instance; a
// driver is owned by exactly one pool worker and never shared.
type SDKReplicateKeyDriver struct {
	creds     config.Credentials
	kmsClient *kms.KMS
	logger    *log.Logger
}

func NewReplicateKeyDriver(logDest io.Writer, creds config.Credentials) *SDKReplicateKeyDriver {
	logger := log.New(logDest, "ReplicateKeyDriver ", log.LstdFlags)

	return &SDKReplicateKeyDriver{creds: creds, logger: logger}
}

func (d *SDKReplicateKeyDriver) Replicate(driverConfig resources.ReplicateKeyDriverConfig) error {
	replicateStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("Completed ReplicateKey() in %f seconds\n", time.Since(startTime).Seconds())
	}(replicateStartTime)

	d.logger.Printf("Replicating kms key %s to region %s\n", driverConfig.KmsKeyId, driverConfig.TargetRegion)

	// The policy was just read from the source key, so applying it verbatim
	// cannot lock out a caller who could already administer that key.
	policy := string(driverConfig.Policy)
	_, err := d.client().ReplicateKey(&kms.ReplicateKeyInput{
		KeyId:                          &driverConfig.KmsKeyId,
		ReplicaRegion:                  &driverConfig.TargetRegion,
		Policy:                         &policy,
		BypassPolicyLockoutSafetyCheck: aws.Bool(true),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == kms.ErrCodeAlreadyExistsException {
			d.logger.Printf("Kms key %s already replicated to %s\n", driverConfig.KmsKeyId, driverConfig.TargetRegion)
			return nil
		}

		return fmt.Errorf("replicating key %s to %s: %s", driverConfig.KmsKeyId, driverConfig.TargetRegion, err)
	}

	d.logger.Printf("Replicated kms key %s to region %s\n", driverConfig.KmsKeyId, driverConfig.TargetRegion)
	return nil
}

func (d *SDKReplicateKeyDriver) client() *kms.KMS {
	if d.kmsClient == nil {
		awsConfig := d.creds.GetAwsConfig().
			WithLogger(newDriverLogger(d.logger))

		d.kmsClient = kms.New(session.Must(session.NewSession(awsConfig)))
	}

	return d.kmsClient
}
