package filestore

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// S3 stores media in a bucket. Deployments that keep media next to the
// process use Local instead; the two are interchangeable behind FileStore.
type S3 struct {
	bucket   string
	uploader *s3manager.Uploader
	svc      *s3.S3
}

func NewS3(bucket string) (*S3, error) {
	// Region and credentials come from the standard AWS env/config chain.
	sess, err := session.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aws session")
	}
	return &S3{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

func (s *S3) Save(name string, content []byte) error {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		ACL:    aws.String("public-read"),
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   bytes.NewReader(content),
	})
	return errors.Wrapf(err, "failed to upload %s to s3", name)
}

func (s *S3) Remove(name string) error {
	// DeleteObject on a missing key succeeds, which matches Local.
	_, err := s.svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	return errors.Wrapf(err, "failed to delete %s from s3", name)
}

func (s *S3) URL(base, name string) string {
	return fmt.Sprintf("%s/%s", base, name)
}

var _ FileStore = (*S3)(nil)
