package parser

import (
	"strings"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

// SegmentSections 将简历全文切分为带标签的章节。
//
// 逐行处理非空白行：当一行命中任一章节标题模式且长度小于50字符时，
// 切换当前章节并清空该章节的行列表；标题行本身也会计入新章节。
// 其余行追加到当前章节，初始章节为 header。
// 多个类别同时命中时，按模式声明顺序、再按类别声明顺序决出归属。
// 结果是对所有非空白行的全划分：每一行恰好属于一个章节。
func SegmentSections(text string) types.SectionMap {
	sections := types.SectionMap{}
	current := types.SectionHeader
	sections[current] = []string{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if label, ok := matchSectionHeader(line); ok {
			current = label
			sections[current] = []string{}
		}

		sections[current] = append(sections[current], line)
	}

	// 没有任何行归入的标签不保留（包括空的 header）
	for label, lines := range sections {
		if len(lines) == 0 {
			delete(sections, label)
		}
	}

	return sections
}

// matchSectionHeader 判断一行是否为章节标题，返回命中的章节标签
func matchSectionHeader(line string) (types.SectionLabel, bool) {
	if len(line) >= constants.SectionHeaderMaxLen {
		return "", false
	}
	for _, rule := range sectionRules {
		for _, p := range rule.Patterns {
			if p.MatchString(line) {
				return rule.Label, true
			}
		}
	}
	return "", false
}
