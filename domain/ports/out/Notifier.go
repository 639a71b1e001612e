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

// Notifier is a channel able to carry a subject line next to the message
// body (eg. an SNS topic).
type Notifier interface {
	Publish(subject, message string) error
}

// Viewer is a plain message sink used for secondary, human-facing
// channels (eg. a Slack webhook).
type Viewer interface {
	SendMessage(message string) error
}
