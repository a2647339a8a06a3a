package processor

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/types"
)

const sampleResumeText = `Jane Smith
Email: jane@example.com
Phone: 555-123-4567

Skills
Python, React

Experience
Senior Developer, Acme Corp, 2018-2022`

func newTestProcessor(t *testing.T) (*ResumeProcessor, *storage.MemoryResumeStore) {
	t.Helper()
	store := storage.NewMemoryResumeStore()
	p := NewResumeProcessor(
		&storage.Storage{Resumes: store},
		processorTestExtractor(t),
	)
	return p, store
}

func processorTestExtractor(t *testing.T) ProcessorOption {
	t.Helper()
	return WithTextExtractor(parser.NewTextExtractor(context.Background()))
}

func TestProcessUpload(t *testing.T) {
	p, store := newTestProcessor(t)

	result, err := p.ProcessUpload(context.Background(), UploadFile{
		Filename: "jane.txt",
		Data:     []byte(sampleResumeText),
	})

	require.NoError(t, err)
	assert.Equal(t, "rule_based", result.ParserUsed)
	assert.Equal(t, "Jane Smith", result.Record.FullName)
	assert.Equal(t, "jane.txt", result.Record.SourceFile)
	assert.NotEmpty(t, result.Record.ID)
	assert.Zero(t, result.DuplicatesRemoved)

	records, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestProcessUploadUnsupportedExtension(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.ProcessUpload(context.Background(), UploadFile{Filename: "resume.exe", Data: []byte("x")})

	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestProcessUploadFileTooLarge(t *testing.T) {
	store := storage.NewMemoryResumeStore()
	p := NewResumeProcessor(
		&storage.Storage{Resumes: store},
		processorTestExtractor(t),
		WithMaxUploadSizeMB(1),
	)

	_, err := p.ProcessUpload(context.Background(), UploadFile{
		Filename: "huge.txt",
		Data:     make([]byte, 2<<20),
	})

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestProcessUploadEmptyText(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.ProcessUpload(context.Background(), UploadFile{Filename: "blank.txt", Data: []byte("   \n ")})

	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestProcessUploadPersistsObjectPaths(t *testing.T) {
	store := storage.NewMemoryResumeStore()
	objects := newFakeObjectStore()
	p := NewResumeProcessor(
		&storage.Storage{Resumes: store},
		processorTestExtractor(t),
		WithObjectStore(objects),
	)

	result, err := p.ProcessUpload(context.Background(), UploadFile{
		Filename: "jane.txt",
		Data:     []byte(sampleResumeText),
	})

	require.NoError(t, err)
	assert.Equal(t, "archive/jane.txt", result.OriginalObjectPath)

	// 对象路径随记录一起入库，归档文件可以从记录反查
	records, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "archive/jane.txt", records[0].OriginalFilePath)
	assert.Equal(t, "archive/jane.txt", records[0].ParsedTextPath)
	assert.Equal(t, sampleResumeText, objects.parsed["archive/jane.txt"])
}

func TestProcessUploadReplacesDuplicatePerson(t *testing.T) {
	p, store := newTestProcessor(t)
	ctx := context.Background()

	_, err := p.ProcessUpload(ctx, UploadFile{Filename: "jane_v1.txt", Data: []byte(sampleResumeText)})
	require.NoError(t, err)

	// 同一个人的新版本简历入库时删除旧记录
	result, err := p.ProcessUpload(ctx, UploadFile{
		Filename: "jane_v2.txt",
		Data:     []byte(sampleResumeText + "\nDocker"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DuplicatesRemoved)

	records, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "jane_v2.txt", records[0].SourceFile)
}

func TestProcessUploadFallsBackToNextParser(t *testing.T) {
	store := storage.NewMemoryResumeStore()
	p := NewResumeProcessor(
		&storage.Storage{Resumes: store},
		processorTestExtractor(t),
		WithParsers(failingParser{}, parser.NewRuleBasedParser()),
	)

	result, err := p.ProcessUpload(context.Background(), UploadFile{
		Filename: "jane.txt",
		Data:     []byte(sampleResumeText),
	})

	require.NoError(t, err)
	assert.Equal(t, "rule_based", result.ParserUsed)
}

func TestProcessBatchMixedResults(t *testing.T) {
	p, store := newTestProcessor(t)

	results := p.ProcessBatch(context.Background(), []UploadFile{
		{Filename: "jane.txt", Data: []byte(sampleResumeText)},
		{Filename: "bad.exe", Data: []byte("x")},
	})

	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	assert.Equal(t, "jane.txt", results[0].Filename)
	assert.NotEmpty(t, results[0].ResumeID)

	assert.False(t, results[1].Success)
	assert.Equal(t, "bad.exe", results[1].Filename)
	assert.NotEmpty(t, results[1].Error)

	records, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// fakeObjectStore 内存归档存储，记录上传的对象
type fakeObjectStore struct {
	originals map[string][]byte
	parsed    map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		originals: map[string][]byte{},
		parsed:    map[string]string{},
	}
}

func (f *fakeObjectStore) UploadOriginal(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	name := "archive/" + filename
	f.originals[name] = data
	return name, nil
}

func (f *fakeObjectStore) UploadParsedText(ctx context.Context, originalObjectName, text string) (string, error) {
	name := strings.TrimSuffix(originalObjectName, filepath.Ext(originalObjectName)) + ".txt"
	f.parsed[name] = text
	return name, nil
}

// failingParser 总是失败的解析策略，用于验证回退
type failingParser struct{}

func (failingParser) Name() string { return "failing" }

func (failingParser) Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	return nil, errors.New("解析失败")
}
