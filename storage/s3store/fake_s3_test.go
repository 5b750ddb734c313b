package s3store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeObject struct {
	data     []byte
	modified time.Time
}

// fakeS3 is an in-memory implementation of API. Errors queued in failures
// are returned, in order, by the next calls of the named operation.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string]fakeObject
	parts    map[string][][]byte
	pageSize int
	now      time.Time

	failures map[string][]error
	calls    map[string]int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects:  map[string]fakeObject{},
		parts:    map[string][][]byte{},
		pageSize: 1000,
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		failures: map[string][]error{},
		calls:    map[string]int{},
	}
}

func objectID(bucket, key *string) string {
	return aws.ToString(bucket) + "/" + aws.ToString(key)
}

// enter records a call and pops a queued failure. Callers hold m.mu.
func (m *fakeS3) enter(op string) error {
	m.calls[op]++
	queue := m.failures[op]
	if len(queue) == 0 {
		return nil
	}
	m.failures[op] = queue[1:]
	return queue[0]
}

func (m *fakeS3) failNext(op string, errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = append(m.failures[op], errs...)
}

func (m *fakeS3) callCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *fakeS3) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *fakeS3) GetObject(ctx context.Context, input *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetObject"); err != nil {
		return nil, err
	}

	obj, ok := m.objects[objectID(input.Bucket, input.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}

	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(slices.Clone(obj.data))),
		ContentLength: aws.Int64(int64(len(obj.data))),
		LastModified:  aws.Time(obj.modified),
	}, nil
}

func (m *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("PutObject"); err != nil {
		return nil, err
	}

	m.objects[objectID(input.Bucket, input.Key)] = fakeObject{data: data, modified: m.tick()}
	return &s3.PutObjectOutput{ETag: aws.String(strconv.Itoa(len(data)))}, nil
}

func (m *fakeS3) DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteObject"); err != nil {
		return nil, err
	}

	delete(m.objects, objectID(input.Bucket, input.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (m *fakeS3) CopyObject(ctx context.Context, input *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("CopyObject"); err != nil {
		return nil, err
	}

	source, err := url.PathUnescape(aws.ToString(input.CopySource))
	if err != nil {
		return nil, err
	}
	obj, ok := m.objects[source]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}

	m.objects[objectID(input.Bucket, input.Key)] = fakeObject{data: obj.data, modified: m.tick()}
	return &s3.CopyObjectOutput{}, nil
}

func (m *fakeS3) ListObjectsV2(ctx context.Context, input *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListObjectsV2"); err != nil {
		return nil, err
	}

	bucket := aws.ToString(input.Bucket)
	prefix := aws.ToString(input.Prefix)
	var keys []string
	for id := range m.objects {
		b, key, _ := strings.Cut(id, "/")
		if b == bucket && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	start := 0
	if token := aws.ToString(input.ContinuationToken); token != "" {
		start, _ = strconv.Atoi(token)
	}
	end := min(start+m.pageSize, len(keys))

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}
	for _, key := range keys[start:end] {
		obj := m.objects[bucket+"/"+key]
		out.Contents = append(out.Contents, types.Object{
			Key:          aws.String(key),
			LastModified: aws.Time(obj.modified),
			Size:         aws.Int64(int64(len(obj.data))),
		})
	}
	out.KeyCount = aws.Int32(int32(len(out.Contents)))

	return out, nil
}

func (m *fakeS3) CreateMultipartUpload(ctx context.Context, input *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := objectID(input.Bucket, input.Key)
	m.parts[id] = nil
	return &s3.CreateMultipartUploadOutput{
		Bucket:   input.Bucket,
		Key:      input.Key,
		UploadId: aws.String(id),
	}, nil
}

func (m *fakeS3) UploadPart(ctx context.Context, input *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := aws.ToString(input.UploadId)
	n := int(aws.ToInt32(input.PartNumber))
	for len(m.parts[id]) < n {
		m.parts[id] = append(m.parts[id], nil)
	}
	m.parts[id][n-1] = data
	return &s3.UploadPartOutput{ETag: aws.String(fmt.Sprintf("%s-%d", id, n))}, nil
}

func (m *fakeS3) CompleteMultipartUpload(ctx context.Context, input *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := aws.ToString(input.UploadId)
	m.objects[id] = fakeObject{data: bytes.Join(m.parts[id], nil), modified: m.tick()}
	delete(m.parts, id)
	return &s3.CompleteMultipartUploadOutput{Bucket: input.Bucket, Key: input.Key}, nil
}

func (m *fakeS3) AbortMultipartUpload(ctx context.Context, input *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.parts, aws.ToString(input.UploadId))
	return &s3.AbortMultipartUploadOutput{}, nil
}

var _ API = (*fakeS3)(nil)
