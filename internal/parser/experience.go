package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// ExtractExperience 从工作经历章节行中抽取工作条目。
//
// 先按行切分条目分组：一行含年份区间、形如 "Company," / "Company |"
// 或以职级/职位关键词开头时开启新分组，否则追加到当前分组。每个
// 分组独立抽取公司、职位、年份；职位文本缺少职位尾词时从分组全文
// 补扫一个尾词拼接。公司或职位非空的分组才生成条目，Description
// 始终是分组的原始文本。
func ExtractExperience(experienceSection []string) []types.ExperienceEntry {
	experience := []types.ExperienceEntry{}
	if len(experienceSection) == 0 {
		return experience
	}

	groups := splitJobEntries(experienceSection)
	if len(groups) == 0 {
		groups = []string{strings.Join(experienceSection, " ")}
	}

	for _, entryText := range groups {
		trimmed := strings.TrimSpace(entryText)
		if len(trimmed) < 10 {
			continue
		}

		company := strings.TrimSpace(firstMatch(companyPatterns, entryText))
		role := extractRole(entryText)
		years := strings.TrimSpace(firstMatch(expYearPatterns, entryText))

		if company == "" && role == "" {
			continue
		}

		experience = append(experience, types.ExperienceEntry{
			Company:     company,
			Role:        role,
			Years:       years,
			Description: trimmed,
		})
	}

	return experience
}

// splitJobEntries 将章节行切分为独立的工作条目文本
func splitJobEntries(lines []string) []string {
	var entries []string
	var current []string

	for _, line := range lines {
		if startsNewJobEntry(line) {
			if len(current) > 0 {
				entries = append(entries, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}

	return entries
}

func startsNewJobEntry(line string) bool {
	for _, p := range jobEntryStartPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// extractRole 抽取职位名，必要时补全职位尾词（developer/engineer等）
func extractRole(entryText string) string {
	role := strings.TrimSpace(firstMatch(rolePatterns, entryText))
	if role == "" {
		return ""
	}
	if !roleTitleKeywordPattern.MatchString(role) {
		if m := roleTitleSuffixPattern.FindStringSubmatch(entryText); m != nil {
			role += " " + m[1]
		}
	}
	return role
}
