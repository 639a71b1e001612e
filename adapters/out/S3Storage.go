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
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"

	"osprey/domain/entities"
	"osprey/pkg/awsutils"
)

type S3Storage struct {
	svc awsutils.S3
}

func NewS3Storage(awsSession *session.Session, awsConfig *aws.Config) *S3Storage {
	svc := awsutils.S3{}
	svc.Init(awsSession, awsConfig)

	return &S3Storage{svc: svc}
}

func (s *S3Storage) Get(bucket, name string, writer io.WriterAt) error {
	return errors.Wrapf(s.svc.DownloadFromS3Bucket(writer, bucket, name), "download s3://%s/%s", bucket, name)
}

func (s *S3Storage) Copy(srcBucket, srcKey, dstBucket, dstKey string, metadata map[string]string) error {
	return errors.Wrapf(s.svc.CopyObjectWithMetadata(srcBucket, srcKey, dstBucket, dstKey, metadata), "copy s3://%s/%s", srcBucket, srcKey)
}

func (s *S3Storage) Delete(bucket, name string) error {
	return errors.Wrapf(s.svc.DeleteObjectFromS3Bucket(bucket, name), "delete s3://%s/%s", bucket, name)
}

func (s *S3Storage) PutTags(bucket, name string, tags entities.TagSet) error {
	return errors.Wrapf(s.svc.PutTagsOnObject(bucket, name, tags.Pairs()), "tag s3://%s/%s", bucket, name)
}
