package resources

import "github.com/aws/aws-lambda-go/cfn"

// OutcomeNotifier reports the terminal invocation status back to the
// CloudFormation callback target carried by the lifecycle event
//
//counterfeiter:generate . OutcomeNotifier
type OutcomeNotifier interface {
	Notify(event cfn.Event, physicalResourceID string, status cfn.StatusType) error
}
