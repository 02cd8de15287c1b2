package s3

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OFFIS-RIT/carekg/pkg/store"
)

type fakeObjects map[string][]byte

func (f fakeObjects) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f fakeObjects) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestS3GraphStorage(t *testing.T) {
	objects := fakeObjects{}
	s := NewS3GraphStorageWithClient(objects, "carekg", "snapshots")
	ctx := context.Background()

	_, err := s.LoadGraph(ctx, "kg")
	assert.ErrorIs(t, err, store.ErrGraphNotFound)

	require.NoError(t, s.SaveGraph(ctx, "kg", []byte{1, 2, 3}))
	assert.Contains(t, objects, "carekg/snapshots/kg.kg")

	data, err := s.LoadGraph(ctx, "kg")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestNewS3GraphStorageRequiresBucket(t *testing.T) {
	_, err := NewS3GraphStorage(context.Background(), NewS3GraphStorageParams{Region: "eu-central-1"})
	assert.Error(t, err)
}
