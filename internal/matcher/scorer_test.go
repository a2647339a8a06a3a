package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

func TestScoreResumeExactSkillMatch(t *testing.T) {
	resume := &types.ResumeRecord{Skills: types.Skills{Technical: []string{"Python"}}}

	assert.Equal(t, 40, ScoreResume(resume, "Python"))
	assert.Equal(t, 40, ScoreResume(resume, "python"))
}

func TestScoreResumePartialSkillMatch(t *testing.T) {
	resume := &types.ResumeRecord{Skills: types.Skills{Technical: []string{"Python"}}}

	// 部分匹配按重叠长度×2计分
	assert.Equal(t, 4, ScoreResume(resume, "Py"))
}

func TestScoreResumeAllComponents(t *testing.T) {
	resume := &types.ResumeRecord{
		Skills: types.Skills{Technical: []string{"Python"}},
		WorkExperience: []types.ExperienceEntry{
			{Company: "Acme", Role: "Python Developer", Years: "2018-2022", Description: "built data pipelines"},
		},
		Projects:       []types.ProjectEntry{{Name: "Python Scraper", Description: "crawls the web"}},
		Education:      []types.EducationEntry{{Degree: "BSc", Field: "Python Programming"}},
		Certifications: []string{"Python Institute PCAP"},
	}

	// 40(技能) + 27(经历: 4年×3=12 + 职位名命中15) + 15(项目) + 10(教育) + 5(证书)
	assert.Equal(t, 97, ScoreResume(resume, "Python"))
}

func TestScoreResumeNoMatch(t *testing.T) {
	resume := &types.ResumeRecord{Skills: types.Skills{Technical: []string{"CSS"}}}

	assert.Equal(t, 0, ScoreResume(resume, "Python"))
}

func TestScoreResumeWithinBounds(t *testing.T) {
	resume := &types.ResumeRecord{
		Skills: types.Skills{Technical: []string{"Python"}, Soft: []string{"Communication"}},
		WorkExperience: []types.ExperienceEntry{
			{Role: "Python Developer", Years: "1990-2030", Description: "python everywhere"},
			{Role: "Senior Python Engineer", Years: "40", Description: "more python"},
		},
		Projects:       []types.ProjectEntry{{Name: "python tool"}},
		Education:      []types.EducationEntry{{Degree: "python studies"}},
		Certifications: []string{"python cert"},
	}

	score := ScoreResume(resume, "Python")
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
	// 经历分项封顶30
	assert.Equal(t, 100, score)
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2018-2022", 4},
		{"2015 - 2019", 4},
		{"3", 3},
		{"", 1},
		{"unknown", 1},
		{"abc-def", 1},
		{"2018-", 1}, // 结束年缺失时按起始年+1
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseExperienceYears(tt.in), "input: %q", tt.in)
	}
}

func TestParseExperienceYearsPresent(t *testing.T) {
	want := time.Now().Year() - 2020
	assert.Equal(t, want, parseExperienceYears("2020-present"))
	assert.Equal(t, want, parseExperienceYears("2020-Ongoing"))
}

func TestSearchResumesRanking(t *testing.T) {
	junior := &types.ResumeRecord{
		FullName: "Junior Dev",
		Skills:   types.Skills{Technical: []string{"Python"}},
	}
	senior := &types.ResumeRecord{
		FullName: "Senior Dev",
		Skills:   types.Skills{Technical: []string{"Python"}},
		WorkExperience: []types.ExperienceEntry{
			{Role: "Python Developer", Years: "2018-2022", Description: "backend work"},
		},
	}
	unrelated := &types.ResumeRecord{
		FullName: "Designer",
		Skills:   types.Skills{Technical: []string{"Figma"}},
	}

	results := SearchResumes([]*types.ResumeRecord{junior, senior, unrelated}, "Python")

	require.Len(t, results, 2)
	assert.Equal(t, "Senior Dev", results[0].Resume.FullName)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "#1", results[0].RankLabel)
	assert.Equal(t, "Junior Dev", results[1].Resume.FullName)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, "#2", results[1].RankLabel)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchResumesStableOrderOnTie(t *testing.T) {
	first := &types.ResumeRecord{FullName: "First", Skills: types.Skills{Technical: []string{"Go"}}}
	second := &types.ResumeRecord{FullName: "Second", Skills: types.Skills{Technical: []string{"Go"}}}

	results := SearchResumes([]*types.ResumeRecord{first, second}, "Go")

	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Resume.FullName)
	assert.Equal(t, "Second", results[1].Resume.FullName)
}

func TestSearchResumesNoMatches(t *testing.T) {
	resumes := []*types.ResumeRecord{
		{FullName: "Designer", Skills: types.Skills{Technical: []string{"Figma"}}},
	}

	results := SearchResumes(resumes, "Python")

	assert.NotNil(t, results)
	assert.Empty(t, results)
}
