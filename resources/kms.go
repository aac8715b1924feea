package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// DefaultPolicyName is the only key policy name KMS supports
const DefaultPolicyName = "default"

// KeyPolicy is the authorization policy document attached to a KMS key. It is
// treated as an opaque JSON blob: read once from the source key and applied
// verbatim to every replica.
type KeyPolicy string

// KeyPolicyDriver abstracts reading the current policy document of a KMS key
//
//counterfeiter:generate . KeyPolicyDriver
type KeyPolicyDriver interface {
	Fetch(KeyPolicyDriverConfig) (KeyPolicy, error)
}

// ReplicateKeyDriver abstracts replicating a multi-region KMS key into one target region
//
//counterfeiter:generate . ReplicateKeyDriver
type ReplicateKeyDriver interface {
	Replicate(ReplicateKeyDriverConfig) error
}

type KeyPolicyDriverConfig struct {
	KmsKeyId string
}

type ReplicateKeyDriverConfig struct {
	KmsKeyId     string
	TargetRegion string
	Policy       KeyPolicy
}
