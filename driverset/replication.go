package driverset

import (
	"io"

	"kms-key-replicator/config"
	"kms-key-replicator/driver"
	"kms-key-replicator/resources"
)

//counterfeiter:generate . ReplicationDriverSet
type ReplicationDriverSet interface {
	KeyPolicyDriver() resources.KeyPolicyDriver
	ReplicateKeyDriver() resources.ReplicateKeyDriver
}

// Factory builds a fresh driver set. The replication pool invokes it once per
// worker so that every worker owns its client handles outright.
type Factory func() ReplicationDriverSet

type replicationDriverSet struct {
	keyPolicyDriver    *driver.SDKKeyPolicyDriver
	replicateKeyDriver *driver.SDKReplicateKeyDriver
}

func NewReplicationDriverSet(logDest io.Writer, creds config.Credentials) ReplicationDriverSet {
	return &replicationDriverSet{
		keyPolicyDriver:    driver.NewKeyPolicyDriver(logDest, creds),
		replicateKeyDriver: driver.NewReplicateKeyDriver(logDest, creds),
	}
}

func NewFactory(logDest io.Writer, creds config.Credentials) Factory {
	return func() ReplicationDriverSet {
		return NewReplicationDriverSet(logDest, creds)
	}
}

func (s *replicationDriverSet) KeyPolicyDriver() resources.KeyPolicyDriver {
	return s.keyPolicyDriver
}

func (s *replicationDriverSet) ReplicateKeyDriver() resources.ReplicateKeyDriver {
	return s.replicateKeyDriver
}
