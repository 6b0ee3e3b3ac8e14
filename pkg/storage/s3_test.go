package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixora/adminapi/internal/config"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	deleteInput *s3.DeleteObjectInput
	err         error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = params
	return &s3.DeleteObjectOutput{}, f.err
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	client := NewWithAPI(fake, "banners", "https://cdn.fixora.app/")

	url, err := client.Upload(context.Background(), "banners/abc.png", "image/png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.fixora.app/banners/abc.png", url)
	require.NotNil(t, fake.putInput)
	assert.Equal(t, "banners", *fake.putInput.Bucket)
	assert.Equal(t, "banners/abc.png", *fake.putInput.Key)
	assert.Equal(t, "image/png", *fake.putInput.ContentType)
}

func TestUploadError(t *testing.T) {
	fake := &fakeS3{err: errors.New("denied")}
	client := NewWithAPI(fake, "banners", "https://cdn.fixora.app")

	_, err := client.Upload(context.Background(), "k", "image/png", strings.NewReader("img"))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	fake := &fakeS3{}
	client := NewWithAPI(fake, "banners", "https://cdn.fixora.app")

	require.NoError(t, client.Delete(context.Background(), "banners/abc.png"))
	require.NotNil(t, fake.deleteInput)
	assert.Equal(t, "banners/abc.png", *fake.deleteInput.Key)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(&config.Config{S3Endpoint: "https://s3.example.com", S3Bucket: "b"})
	assert.Error(t, err)

	_, err = New(&config.Config{S3AccessKey: "ak", S3SecretKey: "sk", S3Bucket: "b"})
	assert.Error(t, err)
}
