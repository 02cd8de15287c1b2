package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OFFIS-RIT/carekg/pkg/loader"
)

type fakeGetter struct {
	objects map[string]string
	calls   atomic.Int32
}

func (f *fakeGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls.Add(1)
	body, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3GraphFileLoader(t *testing.T) {
	getter := &fakeGetter{objects: map[string]string{
		"care/raw/nursing_homes.json": `[{"name":"泰康之家·燕园"}]`,
	}}
	l := NewS3GraphFileLoaderWithClient("care", getter)

	file := loader.NewGraphJSONFile(loader.NewGraphFileParams{
		ID:       "care",
		FilePath: "raw/nursing_homes.json",
		Domain:   loader.DomainCare,
		Loader:   l,
	})

	for range 3 {
		content, err := file.GetText(context.Background())
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"泰康之家·燕园"}]`, string(content))
	}
	assert.Equal(t, int32(1), getter.calls.Load())

	_, err := l.GetFileText(context.Background(), loader.GraphFile{ID: "x", FilePath: "raw/missing.txt"})
	assert.Error(t, err)
}
