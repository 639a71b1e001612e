/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package metrics

import (
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/uber-go/tally/v4"

	"osprey/logging"
	"osprey/pkg/awsutils"
)

const (
	applicationName = "osprey_scanner"
	reportInterval  = time.Second
)

// NewCloudWatchScope builds a tally scope flushing counters to CloudWatch
// under the service namespace.
func NewCloudWatchScope(awsSession *session.Session, logger logging.Logger) (tally.Scope, io.Closer) {
	svc := awsutils.CloudWatch{}
	svc.Init(awsSession, nil)

	reporter := &cloudWatchReporter{svc: svc, namespace: applicationName, logger: logger}
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:    applicationName,
		Separator: ".",
		Tags:      map[string]string{},
		Reporter:  reporter},
		reportInterval)

	return scope, closer
}

func NewNoopScope() tally.Scope {
	return tally.NoopScope
}

// cloudWatchReporter adapts CloudWatch PutMetricData to tally's reporter
// interface. Delivery is best effort: failures are logged, never raised.
type cloudWatchReporter struct {
	svc       awsutils.CloudWatch
	namespace string
	logger    logging.Logger
}

func (r *cloudWatchReporter) ReportCounter(name string, tags map[string]string, value int64) {
	if err := r.svc.PutCounter(r.namespace, name, tags, value); err != nil {
		r.logger.Errorw("Failed to report counter", "error", err, "metric", name)
	}
}

func (r *cloudWatchReporter) ReportGauge(name string, tags map[string]string, value float64) {
}

func (r *cloudWatchReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
}

func (r *cloudWatchReporter) ReportHistogramValueSamples(name string, tags map[string]string,
	buckets tally.Buckets, bucketLowerBound, bucketUpperBound float64, samples int64) {
}

func (r *cloudWatchReporter) ReportHistogramDurationSamples(name string, tags map[string]string,
	buckets tally.Buckets, bucketLowerBound, bucketUpperBound time.Duration, samples int64) {
}

func (r *cloudWatchReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *cloudWatchReporter) Flush() {
}

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }
