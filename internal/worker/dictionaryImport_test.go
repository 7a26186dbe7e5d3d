package worker_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"pwstrength/internal/worker"
)

type fakeImporter struct {
	words []string
	err   error
	calls int
}

func (f *fakeImporter) Import(_ context.Context, words []string) error {
	f.calls++
	f.words = words

	return f.err
}

type fakeObjectGetter struct {
	body string
	key  string
}

func (f *fakeObjectGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.key = *in.Key

	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func writeWordList(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewDictionaryImportTask(t *testing.T) {
	rq := require.New(t)

	task, err := worker.NewDictionaryImportTask(worker.DictionaryImportPayload{
		Source:   worker.ImportSourceFile,
		Location: "/data/dictionary.txt",
	}, "dictionary")
	rq.NoError(err)
	rq.Equal(worker.TypeDictionaryImport, task.Type())
	rq.JSONEq(`{"source":"file","location":"/data/dictionary.txt"}`, string(task.Payload()))

	_, err = worker.NewDictionaryImportTask(worker.DictionaryImportPayload{Source: "ftp", Location: "x"}, "dictionary")
	rq.ErrorContains(err, `unknown source "ftp"`)
}

func TestDictionaryImportProcessTaskFile(t *testing.T) {
	rq := require.New(t)

	path := writeWordList(t, "password\n123456\n\nPassword\n  qwerty  \n")
	importer := &fakeImporter{}

	task, err := worker.NewDictionaryImportTask(worker.DictionaryImportPayload{
		Source:   worker.ImportSourceFile,
		Location: path,
	}, "dictionary")
	rq.NoError(err)

	rq.NoError(worker.NewDictionaryImport(importer).ProcessTask(context.Background(), task))
	rq.Equal(1, importer.calls)
	rq.Equal([]string{"password", "123456", "qwerty"}, importer.words)
}

func TestDictionaryImportS3(t *testing.T) {
	rq := require.New(t)

	importer := &fakeImporter{}
	getter := &fakeObjectGetter{body: "letmein\nmonkey\n"}

	n, err := worker.NewDictionaryImport(importer).
		WithS3(getter, "lists").
		Import(context.Background(), worker.DictionaryImportPayload{
			Source:   worker.ImportSourceS3,
			Location: "common/top.txt",
		})
	rq.NoError(err)
	rq.Equal(2, n)
	rq.Equal("common/top.txt", getter.key)
	rq.Equal([]string{"letmein", "monkey"}, importer.words)
}

func TestDictionaryImportS3NotConfigured(t *testing.T) {
	rq := require.New(t)

	importer := &fakeImporter{}

	_, err := worker.NewDictionaryImport(importer).Import(context.Background(), worker.DictionaryImportPayload{
		Source:   worker.ImportSourceS3,
		Location: "common/top.txt",
	})
	rq.ErrorContains(err, "s3 is not configured")
	rq.Zero(importer.calls)
}

func TestDictionaryImportProcessTaskSkipsRetry(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		payload string
	}{
		{name: "Malformed JSON", payload: `{"source":`},
		{name: "Unknown source", payload: `{"source":"ftp","location":"x"}`},
		{name: "Empty location", payload: `{"source":"file"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			importer := &fakeImporter{}
			task := asynq.NewTask(worker.TypeDictionaryImport, []byte(tc.payload))

			err := worker.NewDictionaryImport(importer).ProcessTask(context.Background(), task)
			rq.ErrorIs(err, asynq.SkipRetry)
			rq.Zero(importer.calls)
		})
	}
}

func TestDictionaryImportProcessTaskRetriesStorageErrors(t *testing.T) {
	rq := require.New(t)

	path := writeWordList(t, "password\n")
	importer := &fakeImporter{err: errors.New("redis: connection refused")}

	task, err := worker.NewDictionaryImportTask(worker.DictionaryImportPayload{
		Source:   worker.ImportSourceFile,
		Location: path,
	}, "dictionary")
	rq.NoError(err)

	err = worker.NewDictionaryImport(importer).ProcessTask(context.Background(), task)
	rq.ErrorContains(err, "connection refused")
	rq.NotErrorIs(err, asynq.SkipRetry)
}
