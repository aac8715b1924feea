package config_test

import (
	"kms-key-replicator/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {

	Describe("NewFromEnv", func() {
		It("defaults the worker count when MAX_CONCURRENT_REPLICATIONS is unset", func() {
			GinkgoT().Setenv("MAX_CONCURRENT_REPLICATIONS", "")

			c, err := config.NewFromEnv()
			Expect(err).ToNot(HaveOccurred())
			Expect(c.MaxConcurrentReplications).To(Equal(config.DefaultMaxConcurrentReplications))
		})

		It("reads the worker count from the environment", func() {
			GinkgoT().Setenv("MAX_CONCURRENT_REPLICATIONS", "7")

			c, err := config.NewFromEnv()
			Expect(err).ToNot(HaveOccurred())
			Expect(c.MaxConcurrentReplications).To(Equal(7))
		})

		It("returns an error when the worker count is not numeric", func() {
			GinkgoT().Setenv("MAX_CONCURRENT_REPLICATIONS", "many")

			_, err := config.NewFromEnv()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("MAX_CONCURRENT_REPLICATIONS"))
		})

		It("returns an error when the worker count is less than one", func() {
			GinkgoT().Setenv("MAX_CONCURRENT_REPLICATIONS", "0")

			_, err := config.NewFromEnv()
			Expect(err).To(MatchError("MAX_CONCURRENT_REPLICATIONS must be at least 1"))
		})

		It("picks up AWS credentials from the environment", func() {
			GinkgoT().Setenv("MAX_CONCURRENT_REPLICATIONS", "")
			GinkgoT().Setenv("AWS_ACCESS_KEY_ID", "fake-access-key")
			GinkgoT().Setenv("AWS_SECRET_ACCESS_KEY", "fake-secret-key")
			GinkgoT().Setenv("AWS_ROLE_ARN", "fake-role-arn")
			GinkgoT().Setenv("AWS_REGION", "us-east-1")

			c, err := config.NewFromEnv()
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Credentials).To(Equal(config.Credentials{
				AccessKey: "fake-access-key",
				SecretKey: "fake-secret-key",
				RoleArn:   "fake-role-arn",
				Region:    "us-east-1",
			}))
		})
	})
})
