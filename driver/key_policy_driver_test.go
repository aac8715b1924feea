package driver_test

import (
	"kms-key-replicator/driver"
	"kms-key-replicator/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeyPolicyDriver", func() {
	It("fetches the default policy document of a kms key", func() {
		d := driver.NewKeyPolicyDriver(GinkgoWriter, creds)

		policy, err := d.Fetch(resources.KeyPolicyDriverConfig{KmsKeyId: kmsKeyId})
		Expect(err).ToNot(HaveOccurred())
		Expect(string(policy)).To(ContainSubstring("Statement"))
	})

	It("fails for a key that does not exist", func() {
		d := driver.NewKeyPolicyDriver(GinkgoWriter, creds)

		_, err := d.Fetch(resources.KeyPolicyDriverConfig{
			KmsKeyId: "00000000-0000-0000-0000-000000000000",
		})
		Expect(err).To(HaveOccurred())
	})
})
