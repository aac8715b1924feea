package resources

// ReplicationTask is one unit of replication work: copy the source key into
// one target region with the supplied policy. Tasks are constructed in
// region-list order and consumed exactly once.
type ReplicationTask struct {
	KmsKeyId     string
	TargetRegion string
	Policy       KeyPolicy
}

// ReplicationOutcome is the result of one task. Err is nil on success.
type ReplicationOutcome struct {
	TargetRegion string
	Err          error
}
