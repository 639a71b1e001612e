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

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/uber-go/tally/v4"

	adaptersin "osprey/adapters/in"
	adaptersout "osprey/adapters/out"
	"osprey/config"
	portsout "osprey/domain/ports/out"
	"osprey/domain/services"
	"osprey/domain/services/notification"
	"osprey/domain/services/quarantine"
	"osprey/domain/services/scan"
	"osprey/logging"
	"osprey/metrics"
	"osprey/pkg/awsutils"
)

// Start wires the scanner together and hands control to the Lambda
// runtime. It returns only when the runtime shuts the handler down.
func Start(ctx context.Context) error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewZapLogger(appConfig.Scanner.DebugLog)
	if err != nil {
		return err
	}

	var client awsutils.Clients
	session, err := client.Session(appConfig.Aws.Region, appConfig.Aws.Resolver)
	if err != nil {
		return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
	}

	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.Scanner.Metrics {
		metricsScope, metricsClose = metrics.NewCloudWatchScope(session, logger)
		defer metricsClose.Close()
	} else {
		metricsScope = metrics.NewNoopScope()
	}

	localStorageFactory := adaptersout.NewLocalStorageFactory(appConfig.Scanner.MaxStorageSize)
	remoteStorageFactory := adaptersout.NewRemoteStorageFactory(session, nil)

	downloadService := services.NewDownloadService(remoteStorageFactory, logger)
	tagService := services.NewTagService(remoteStorageFactory, logger)
	quarantineService := quarantine.NewQuarantineService(remoteStorageFactory, appConfig.Scanner.QuarantineBucket, logger)
	clamScanner := scan.NewClamScanner(appConfig.Scanner.ClamscanPath, appConfig.Scanner.ClamDBPath, logger)

	var notifier portsout.Notifier
	if appConfig.Notification.TopicARN != "" {
		notifier = adaptersout.NewSNSNotifier(session, appConfig.Notification.TopicARN)
	}

	var viewers []portsout.Viewer
	if appConfig.Notification.Slack.Webhook != "" {
		viewers = append(viewers, adaptersout.NewSlackViewer(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID))
	}

	alertService := notification.NewAlertService(notifier, viewers, logger)

	orchestrator := services.NewScanOrchestrator(downloadService, localStorageFactory, clamScanner,
		quarantineService, tagService, alertService, appConfig.Scanner.MaxFileSize(), metricsScope, logger)

	eventController := adaptersin.NewEventController(logger)
	handler := adaptersin.NewScanHandler(eventController, orchestrator, alertService, logger)

	logger.Infow("Scanner ready", "quarantine_bucket", appConfig.Scanner.QuarantineBucket,
		"max_file_size", appConfig.Scanner.MaxFileSize(), "clamscan", appConfig.Scanner.ClamscanPath)

	lambda.StartWithOptions(handler.Handle, lambda.WithContext(ctx))

	return nil
}
