package notifier

import (
	"io"
	"log"

	"github.com/aws/aws-lambda-go/cfn"
)

// CloudFormationNotifier delivers the terminal invocation status to the
// pre-signed callback URL carried by the lifecycle event. Delivery is
// attempted once; if it is lost, CloudFormation waits out the stack timeout.
type CloudFormationNotifier struct {
	logger *log.Logger
}

func NewCloudFormationNotifier(logDest io.Writer) *CloudFormationNotifier {
	return &CloudFormationNotifier{
		logger: log.New(logDest, "CloudFormationNotifier ", log.LstdFlags),
	}
}

func (n *CloudFormationNotifier) Notify(event cfn.Event, physicalResourceID string, status cfn.StatusType) error {
	response := cfn.NewResponse(&event)
	response.Status = status
	response.PhysicalResourceID = physicalResourceID
	response.Data = map[string]interface{}{}

	n.logger.Printf("Sending %s for request %s\n", status, event.RequestID)
	return response.Send()
}
