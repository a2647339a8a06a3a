package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

// ExtractProjects 从项目章节行中抽取项目条目。
//
// 以大写开头且长度小于50的行作为新项目标题锚点，其后的行累积为
// 该项目的描述，直到下一个标题行出现。
func ExtractProjects(projectLines []string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	current := types.ProjectEntry{}

	for _, line := range projectLines {
		if isProjectTitle(line) {
			if current.Name != "" {
				current.Description = strings.TrimSpace(current.Description)
				projects = append(projects, current)
			}
			current = types.ProjectEntry{Name: line}
		} else {
			current.Description += line + " "
		}
	}

	if current.Name != "" {
		current.Description = strings.TrimSpace(current.Description)
		projects = append(projects, current)
	}

	return projects
}

func isProjectTitle(line string) bool {
	if line == "" || utf8.RuneCountInString(line) >= constants.ProjectTitleMaxLen {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}
