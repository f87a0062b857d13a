package helpers

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
)

type S3File struct {
	Bucket      string
	Key         string
	ContentType string
	Content     []byte
}

// AddFileToS3 uploads a public file and returns its location.
func AddFileToS3(ctx context.Context, uploader s3manageriface.UploaderAPI, file S3File) (string, error) {
	if file.Bucket == "" {
		return "", errors.New("s3 bucket is not configured")
	}

	out, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(file.Bucket),
		Key:         aws.String(file.Key),
		Body:        bytes.NewReader(file.Content),
		ContentType: aws.String(file.ContentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", file.Key)
	}
	return out.Location, nil
}
