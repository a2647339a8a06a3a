package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

var (
	yearPattern   = regexp.MustCompile(`\d{4}`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// ScoreResume 针对单个搜索技能计算简历评分，结果落在 [0,100]。
//
// 五个分项独立累加：技能匹配（精确40分，无精确命中时部分匹配按
// 重叠长度×2封顶30分）、相关工作经历（年限×3封顶15分 + 职位名
// 直接命中再加15分，分项合计封顶30分）、相关项目15分、相关教育
// 10分、相关证书5分。
func ScoreResume(resume *types.ResumeRecord, searchSkill string) int {
	score := 0
	skillLower := strings.ToLower(searchSkill)

	// 1. 技能匹配
	allSkills := resume.AllSkills()
	for _, s := range allSkills {
		if skillLower == strings.ToLower(s) {
			score += constants.MaxSkillScore
			break
		}
	}
	if score == 0 {
		for _, s := range allSkills {
			sLower := strings.ToLower(s)
			if strings.Contains(sLower, skillLower) || strings.Contains(skillLower, sLower) {
				overlap := len(skillLower)
				if len(sLower) < overlap {
					overlap = len(sLower)
				}
				score += min(constants.MaxPartialSkillScore, overlap*2)
				break
			}
		}
	}

	// 2. 相关工作经历
	experienceScore := 0
	for _, job := range resume.WorkExperience {
		roleLower := strings.ToLower(job.Role)
		descLower := strings.ToLower(job.Description)
		if !strings.Contains(roleLower, skillLower) && !strings.Contains(descLower, skillLower) {
			continue
		}

		years := parseExperienceYears(job.Years)
		experienceScore += min(15, years*3)

		// 技能出现在职位名中额外加分
		if strings.Contains(roleLower, skillLower) {
			experienceScore += 15
		}
	}
	score += min(constants.MaxExperienceScore, experienceScore)

	// 3. 相关项目
	for _, project := range resume.Projects {
		if strings.Contains(strings.ToLower(project.Name), skillLower) ||
			strings.Contains(strings.ToLower(project.Description), skillLower) {
			score += constants.MaxProjectScore
			break
		}
	}

	// 4. 相关教育
	for _, edu := range resume.Education {
		if strings.Contains(strings.ToLower(edu.Degree), skillLower) ||
			strings.Contains(strings.ToLower(edu.Field), skillLower) {
			score += constants.MaxEducationScore
			break
		}
	}

	// 5. 相关证书
	for _, cert := range resume.Certifications {
		if strings.Contains(strings.ToLower(cert), skillLower) {
			score += constants.MaxCertificationScore
			break
		}
	}

	return score
}

// parseExperienceYears 从年限文本中解析工作年数。
// "2018-2022" 取区间差，"present/ongoing" 按当前年份计，裸数字直接取值，
// 解析失败一律按1年处理。
func parseExperienceYears(yearsText string) int {
	if strings.Contains(yearsText, "-") {
		parts := strings.SplitN(yearsText, "-", 2)
		startMatch := yearPattern.FindString(parts[0])
		if startMatch == "" {
			return 1
		}
		startYear, _ := strconv.Atoi(startMatch)

		endPart := strings.ToLower(parts[1])
		var endYear int
		if strings.Contains(endPart, "present") || strings.Contains(endPart, "ongoing") {
			endYear = time.Now().Year()
		} else if endMatch := yearPattern.FindString(parts[1]); endMatch != "" {
			endYear, _ = strconv.Atoi(endMatch)
		} else {
			endYear = startYear + 1
		}
		return endYear - startYear
	}

	if m := numberPattern.FindString(yearsText); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 1
		}
		return n
	}

	return 1
}

// SearchResumes 按技能筛选并评分排序。
//
// 任一技能与搜索词双向包含即入选；结果按分数降序稳定排序，同分
// 保持输入顺序，名次从1起连续编号。
func SearchResumes(resumes []*types.ResumeRecord, skill string) []*types.ScoredResume {
	skillLower := strings.ToLower(skill)
	scored := []*types.ScoredResume{}

	for _, resume := range resumes {
		if !hasSkill(resume, skillLower) {
			continue
		}
		scored = append(scored, &types.ScoredResume{
			Resume: resume,
			Score:  ScoreResume(resume, skill),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	for i, s := range scored {
		s.Rank = i + 1
		s.RankLabel = fmt.Sprintf("#%d", i+1)
	}

	return scored
}

func hasSkill(resume *types.ResumeRecord, skillLower string) bool {
	for _, s := range resume.AllSkills() {
		sLower := strings.ToLower(s)
		if skillLower == sLower || strings.Contains(sLower, skillLower) || strings.Contains(skillLower, sLower) {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
