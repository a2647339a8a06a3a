package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func TestResumeModelRoundTrip(t *testing.T) {
	record := &types.ResumeRecord{
		ID:               "0190a1b2-0000-7000-8000-000000000001",
		FullName:         "Jane Smith",
		Email:            "jane@example.com",
		Skills:           types.Skills{Technical: []string{"Python"}, Soft: []string{"Communication"}},
		WorkExperience:   []types.ExperienceEntry{{Company: "Acme", Role: "Developer", Years: "2018-2022"}},
		SourceFile:       "jane.txt",
		OriginalFilePath: "2026/08/30/abc.txt",
		ParsedTextPath:   "2026/08/30/abc.txt",
		CreatedAt:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	record.EnsureDefaults()

	m, err := FromRecord(record)
	require.NoError(t, err)

	// 对象存储路径落入标量列
	assert.Equal(t, "2026/08/30/abc.txt", m.OriginalFilePath)
	assert.Equal(t, "2026/08/30/abc.txt", m.ParsedTextPath)

	restored := m.ToRecord()
	assert.Equal(t, record, restored)
}

func TestResumeModelToRecordEmptyJSONColumns(t *testing.T) {
	m := &Resume{ID: "id-1", FullName: "Jane Smith"}

	record := m.ToRecord()

	// JSON列为空时仍产出形状固定的记录
	assert.NotNil(t, record.Skills.Technical)
	assert.NotNil(t, record.Education)
	assert.Empty(t, record.OriginalFilePath)
}
