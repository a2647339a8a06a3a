package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducationSingleEntry(t *testing.T) {
	section := []string{
		"Education",
		"Bachelor of Science in Computer Science, University of Example, 2015-2019",
	}

	entries := ExtractEducation(section)

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "University of Example", entries[0].Institution)
	assert.Equal(t, "2015-2019", entries[0].Years)
}

func TestExtractEducationPositionalPairing(t *testing.T) {
	section := []string{
		"Education",
		"Master of Science, ABC University, 2019-2021",
		"Bachelor of Engineering, XYZ College, 2015-2019",
	}

	entries := ExtractEducation(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "University", entries[0].Institution)
	assert.Equal(t, "2019-2021", entries[0].Years)
	assert.Equal(t, "Science", entries[0].Field)

	assert.Equal(t, "Bachelor of Engineering", entries[1].Degree)
	assert.Equal(t, "College", entries[1].Institution)
	assert.Equal(t, "2015-2019", entries[1].Years)
	assert.Equal(t, "Engineering", entries[1].Field)
}

func TestExtractEducationInstitutionOnly(t *testing.T) {
	// 只有院校没有学位时仍生成条目，学位字段留空
	section := []string{"Education", "Example Institute of Technology, 2018"}

	entries := ExtractEducation(section)

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Degree)
	assert.Equal(t, "Institute of Technology", entries[0].Institution)
	assert.Equal(t, "2018", entries[0].Years)
}

func TestExtractEducationEmptySection(t *testing.T) {
	assert.Empty(t, ExtractEducation(nil))
	assert.Empty(t, ExtractEducation([]string{}))
}
