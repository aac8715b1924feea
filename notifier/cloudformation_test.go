package notifier_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"kms-key-replicator/notifier"

	"github.com/aws/aws-lambda-go/cfn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CloudFormationNotifier", func() {

	var (
		server       *httptest.Server
		requestBody  []byte
		requestCount int
		responseCode int
	)

	BeforeEach(func() {
		requestBody = nil
		requestCount = 0
		responseCode = http.StatusOK

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPut))
			body, err := io.ReadAll(r.Body)
			Expect(err).ToNot(HaveOccurred())
			requestBody = body
			requestCount++
			w.WriteHeader(responseCode)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newEvent := func() cfn.Event {
		return cfn.Event{
			RequestType:       cfn.RequestCreate,
			RequestID:         "fake-request-id",
			ResponseURL:       server.URL,
			LogicalResourceID: "ReplicatedKey",
			StackID:           "fake-stack-id",
		}
	}

	It("delivers the terminal status to the callback URL exactly once", func() {
		n := notifier.NewCloudFormationNotifier(GinkgoWriter)
		err := n.Notify(newEvent(), "fake-physical-id", cfn.StatusSuccess)
		Expect(err).ToNot(HaveOccurred())
		Expect(requestCount).To(Equal(1))

		var response map[string]interface{}
		Expect(json.Unmarshal(requestBody, &response)).To(Succeed())
		Expect(response["Status"]).To(Equal("SUCCESS"))
		Expect(response["PhysicalResourceId"]).To(Equal("fake-physical-id"))
		Expect(response["RequestId"]).To(Equal("fake-request-id"))
		Expect(response["StackId"]).To(Equal("fake-stack-id"))
		Expect(response["LogicalResourceId"]).To(Equal("ReplicatedKey"))
	})

	It("carries a failed status without any payload detail", func() {
		n := notifier.NewCloudFormationNotifier(GinkgoWriter)
		err := n.Notify(newEvent(), "fake-physical-id", cfn.StatusFailed)
		Expect(err).ToNot(HaveOccurred())

		var response map[string]interface{}
		Expect(json.Unmarshal(requestBody, &response)).To(Succeed())
		Expect(response["Status"]).To(Equal("FAILED"))
	})

	It("returns an error when the callback endpoint rejects the delivery", func() {
		responseCode = http.StatusForbidden

		n := notifier.NewCloudFormationNotifier(GinkgoWriter)
		err := n.Notify(newEvent(), "fake-physical-id", cfn.StatusSuccess)
		Expect(err).To(HaveOccurred())
	})
})
