package awsutils

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
)

type CloudWatch struct {
	svc *cloudwatch.CloudWatch
}

func (c *CloudWatch) Init(awsSession *session.Session, awsConfig *aws.Config) {
	c.svc = cloudwatch.New(awsSession, awsConfig)
}

func (c *CloudWatch) PutCounter(namespace, name string, tags map[string]string, value int64) error {
	dimensions := make([]*cloudwatch.Dimension, 0, len(tags))
	for key, tagValue := range tags {
		dimensions = append(dimensions, &cloudwatch.Dimension{Name: aws.String(key), Value: aws.String(tagValue)})
	}

	_, err := c.svc.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []*cloudwatch.MetricDatum{{
			MetricName: aws.String(name),
			Dimensions: dimensions,
			Timestamp:  aws.Time(time.Now().UTC()),
			Unit:       aws.String(cloudwatch.StandardUnitCount),
			Value:      aws.Float64(float64(value)),
		}},
	})

	return err
}
