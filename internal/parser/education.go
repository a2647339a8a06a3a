package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// ExtractEducation 从教育章节行中抽取教育经历条目。
//
// 先把章节拼成整段文本，分别收集学位、院校、年份、专业四个平行
// 列表，然后按位置配对：学位数量不少于院校数量时按学位下标遍历，
// 否则按院校下标遍历，缺失的并列字段置空。若没有得到任何结构化
// 条目，回退到逐行扫描：只处理含教育关键词且长度大于10的行，每行
// 独立抽取各字段，学位或院校非空才生成条目。
func ExtractEducation(educationSection []string) []types.EducationEntry {
	education := []types.EducationEntry{}
	if len(educationSection) == 0 {
		return education
	}

	text := strings.Join(educationSection, " ")

	degrees := trimAll(allMatches(degreePatterns, text))
	institutions := trimAll(allMatches(institutionPatterns, text))
	years := trimAll(allMatches(eduYearPatterns, text))
	fields := trimAll(allMatches(fieldPatterns, text))

	if len(degrees) > 0 || len(institutions) > 0 {
		if len(degrees) >= len(institutions) {
			for i := range degrees {
				education = append(education, types.EducationEntry{
					Degree:      degrees[i],
					Institution: at(institutions, i),
					Years:       at(years, i),
					Field:       at(fields, i),
				})
			}
		} else {
			for i := range institutions {
				education = append(education, types.EducationEntry{
					Degree:      at(degrees, i),
					Institution: institutions[i],
					Years:       at(years, i),
					Field:       at(fields, i),
				})
			}
		}
	}

	// 行级回退扫描
	if len(education) == 0 {
		for _, line := range educationSection {
			if len(strings.TrimSpace(line)) <= 10 {
				continue
			}
			if !eduKeywordPattern.MatchString(line) {
				continue
			}

			entry := types.EducationEntry{
				Degree:      strings.TrimSpace(firstMatch(degreePatterns, line)),
				Institution: strings.TrimSpace(firstMatch(institutionPatterns, line)),
				Years:       strings.TrimSpace(firstMatch(eduYearPatterns, line)),
				Field:       strings.TrimSpace(firstMatch(fieldPatterns, line)),
			}
			if entry.Degree != "" || entry.Institution != "" {
				education = append(education, entry)
			}
		}
	}

	return education
}

// at 越界时返回空串的下标访问
func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

func trimAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
