package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"kms-key-replicator/config"
	"kms-key-replicator/driverset"
	"kms-key-replicator/replicator"
	"kms-key-replicator/resources"

	"github.com/aws/aws-lambda-go/cfn"
	uuid "github.com/satori/go.uuid"
)

// ResourceProperties is the custom resource schema embedded in the
// CloudFormation lifecycle event.
type ResourceProperties struct {
	KmsKeyId           string
	ReplicationRegions []string
}

type Handler struct {
	coordinator *replicator.Coordinator
	dsFactory   driverset.Factory
	notifier    resources.OutcomeNotifier
	logger      *log.Logger
}

func New(logDest io.Writer, c config.Config, dsFactory driverset.Factory, notifier resources.OutcomeNotifier) *Handler {
	return &Handler{
		coordinator: replicator.NewCoordinator(logDest, replicator.Config{
			MaxConcurrentReplications: c.MaxConcurrentReplications,
		}),
		dsFactory: dsFactory,
		notifier:  notifier,
		logger:    log.New(logDest, "Handler ", log.LstdFlags),
	}
}

// Handle processes one custom resource lifecycle event. CloudFormation is
// notified exactly once per invocation; only a notification delivery failure
// is surfaced to the Lambda runtime, since without the callback the stack
// operation can only time out.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) error {
	status := h.dispatch(event)

	physicalResourceID := event.PhysicalResourceID
	if physicalResourceID == "" {
		physicalResourceID = fmt.Sprintf("kms-replica-%s", uuid.NewV4().String())
	}

	err := h.notifier.Notify(event, physicalResourceID, status)
	if err != nil {
		h.logger.Printf("Failed to notify CloudFormation: %s\n", err)
		return fmt.Errorf("notifying CloudFormation: %s", err)
	}

	return nil
}

func (h *Handler) dispatch(event cfn.Event) (status cfn.StatusType) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Printf("Recovered from panic handling %s request: %v\n", event.RequestType, r)
			status = cfn.StatusFailed
		}
	}()

	switch event.RequestType {
	case cfn.RequestCreate:
		return h.create(event)
	case cfn.RequestUpdate, cfn.RequestDelete:
		// Region-list changes delivered on update are accepted without
		// reconciling replicas, and delete leaves existing replicas in place.
		h.logger.Printf("Nothing to do for request type %s\n", event.RequestType)
		return cfn.StatusSuccess
	default:
		h.logger.Printf("Unexpected request type: %s\n", event.RequestType)
		return cfn.StatusFailed
	}
}

func (h *Handler) create(event cfn.Event) cfn.StatusType {
	props, err := parseResourceProperties(event.ResourceProperties)
	if err != nil {
		h.logger.Printf("Failed to parse resource properties: %s\n", err)
		return cfn.StatusFailed
	}

	ds := h.dsFactory()
	policy, err := ds.KeyPolicyDriver().Fetch(resources.KeyPolicyDriverConfig{KmsKeyId: props.KmsKeyId})
	if err != nil {
		h.logger.Printf("Failed to fetch key policy: %s\n", err)
		return cfn.StatusFailed
	}

	err = h.coordinator.Replicate(h.dsFactory, props.KmsKeyId, policy, props.ReplicationRegions)
	if err != nil {
		h.logger.Printf("Failed to replicate kms key %s: %s\n", props.KmsKeyId, err)
		return cfn.StatusFailed
	}

	return cfn.StatusSuccess
}

func parseResourceProperties(raw map[string]interface{}) (ResourceProperties, error) {
	props := ResourceProperties{}

	keyId, ok := raw["KMSKeyID"].(string)
	if !ok || keyId == "" {
		return ResourceProperties{}, errors.New("KMSKeyID must be a non-empty string")
	}
	props.KmsKeyId = keyId

	rawRegions, present := raw["ReplicationRegions"]
	if !present || rawRegions == nil {
		return props, nil
	}

	regionList, ok := rawRegions.([]interface{})
	if !ok {
		return ResourceProperties{}, errors.New("ReplicationRegions must be a list of region names")
	}

	for _, rawRegion := range regionList {
		region, ok := rawRegion.(string)
		if !ok {
			return ResourceProperties{}, errors.New("ReplicationRegions must be a list of region names")
		}
		props.ReplicationRegions = append(props.ReplicationRegions, region)
	}

	return props, nil
}
