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

package out

import (
	"github.com/aws/aws-sdk-go/aws/session"

	"osprey/pkg/awsutils"
)

type SNSNotifier struct {
	session  *session.Session
	topicARN string
}

func NewSNSNotifier(awsSession *session.Session, topicARN string) *SNSNotifier {
	return &SNSNotifier{session: awsSession, topicARN: topicARN}
}

func (s *SNSNotifier) Publish(subject, message string) error {
	return awsutils.PublishToTopic(s.session, nil, s.topicARN, subject, message)
}
