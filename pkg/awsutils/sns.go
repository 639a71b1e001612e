package awsutils

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
)

func PublishToTopic(session *session.Session, config *aws.Config, topicARN, subject, message string) error {
	svc := sns.New(session, config)

	params := sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	_, err := svc.Publish(&params)
	return err
}
