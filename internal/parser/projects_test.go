package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects(t *testing.T) {
	lines := []string{
		"Projects",
		"Portfolio Website",
		"built with React and hosted on a static CDN",
	}

	entries := ExtractProjects(lines)

	// 章节标题行本身以大写开头，也会被当作第一个项目标题
	require.Len(t, entries, 2)
	assert.Equal(t, "Projects", entries[0].Name)
	assert.Empty(t, entries[0].Description)
	assert.Equal(t, "Portfolio Website", entries[1].Name)
	assert.Equal(t, "built with React and hosted on a static CDN", entries[1].Description)
}

func TestExtractProjectsMultilineDescription(t *testing.T) {
	lines := []string{
		"Chat App",
		"real-time messaging",
		"with websocket transport",
	}

	entries := ExtractProjects(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Chat App", entries[0].Name)
	assert.Equal(t, "real-time messaging with websocket transport", entries[0].Description)
}

func TestExtractProjectsLongLineIsNotTitle(t *testing.T) {
	long := "This single line describes the project in a very long sentence indeed"
	lines := []string{"Chat App", long}

	entries := ExtractProjects(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Chat App", entries[0].Name)
	assert.Equal(t, long, entries[0].Description)
}

func TestExtractProjectsLeadingDescriptionDropped(t *testing.T) {
	// 第一个标题出现前的描述行没有归属，被丢弃
	entries := ExtractProjects([]string{"stray description", "Chat App"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Chat App", entries[0].Name)
	assert.Empty(t, entries[0].Description)
}

func TestExtractProjectsEmpty(t *testing.T) {
	assert.Empty(t, ExtractProjects(nil))
}
