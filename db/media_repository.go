package db

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate mockgen -source=media_repository.go -destination=../mocks/media_repository_mock.go -package=mocks

// MediaRepository is the blob store collaborator. Objects are addressed by a
// store-relative key; PutObject returns that key as the stable reference
// persisted on the message.
type MediaRepository interface {
	PutObject(body io.Reader, key, contentType string) (string, error)
	DeleteObject(key string) error
}

type mediaRepo struct {
	bucketName string
}

func NewMediaRepo(bucketName string) MediaRepository {
	if bucketName == "" {
		bucketName = os.Getenv("AWS_BUCKET")
	}
	return &mediaRepo{bucketName: bucketName}
}

func createS3Client() (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	return s3.NewFromConfig(cfg), nil
}

func (m *mediaRepo) PutObject(body io.Reader, key, contentType string) (string, error) {
	client, err := createS3Client()
	if err != nil {
		return "", fmt.Errorf("failed to create S3 client: %v", err)
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read file content: %v", err)
	}

	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(m.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	}

	_, err = client.PutObject(context.TODO(), putObjectInput)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	return key, nil
}

// DeleteObject removes the object at key. S3 treats a delete of a missing key
// as success, which matches the idempotent-on-delete contract.
func (m *mediaRepo) DeleteObject(key string) error {
	client, err := createS3Client()
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %v", err)
	}

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}
	return nil
}
