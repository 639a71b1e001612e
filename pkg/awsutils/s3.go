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

package awsutils

import (
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	downloadConcurrency = 1 // Files are scanned whole, sequential download keeps memory flat
	downloadPartSize    = 64 * 1024 * 1024
)

type S3 struct {
	svc        *s3.S3
	downloader *s3manager.Downloader
}

func (s *S3) Init(awsSession *session.Session, awsConfig *aws.Config) {
	s.svc = s3.New(awsSession, awsConfig)

	s.downloader = s3manager.NewDownloaderWithClient(s.svc, func(d *s3manager.Downloader) {
		d.Concurrency = downloadConcurrency
		d.PartSize = downloadPartSize
	})
}

// Downloads a file from S3.
// Refs https://docs.aws.amazon.com/sdk-for-go/api/service/s3/s3manager/#Downloader
func (s *S3) DownloadFromS3Bucket(file io.WriterAt, bucket, item string) error {
	// Some items have URL encoded parts that were causing download issues.
	item, err := url.QueryUnescape(item)
	if err != nil {
		return err
	}

	object := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	}

	_, err = s.downloader.Download(file, object)

	return err
}

// CopyObjectWithMetadata duplicates an object server-side. The metadata
// directive is REPLACE, so the destination carries only the given set.
func (s *S3) CopyObjectWithMetadata(srcBucket, srcKey, dstBucket, dstKey string, metadata map[string]string) error {
	awsMetadata := make(map[string]*string, len(metadata))
	for key, value := range metadata {
		awsMetadata[key] = aws.String(value)
	}

	_, err := s.svc.CopyObject(&s3.CopyObjectInput{
		CopySource:        aws.String(url.PathEscape(fmt.Sprintf("%s/%s", srcBucket, srcKey))),
		Bucket:            aws.String(dstBucket),
		Key:               aws.String(dstKey),
		Metadata:          awsMetadata,
		MetadataDirective: aws.String(s3.MetadataDirectiveReplace),
	})

	return err
}

func (s *S3) DeleteObjectFromS3Bucket(bucket, key string) error {
	_, err := s.svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return err
}

// PutTagsOnObject overwrites the whole tag set of an object.
func (s *S3) PutTagsOnObject(bucket, key string, tags [][2]string) error {
	tagSet := make([]*s3.Tag, 0, len(tags))
	for _, pair := range tags {
		tagSet = append(tagSet, &s3.Tag{Key: aws.String(pair[0]), Value: aws.String(pair[1])})
	}

	_, err := s.svc.PutObjectTagging(&s3.PutObjectTaggingInput{
		Bucket:  aws.String(bucket),
		Key:     aws.String(key),
		Tagging: &s3.Tagging{TagSet: tagSet},
	})

	return err
}

// Get tags from AWS object
func (s *S3) GetTagsFromObject(bucket, key string) (*s3.GetObjectTaggingOutput, error) {
	tag, err := s.svc.GetObjectTagging(&s3.GetObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return tag, err
}
