package matcher

import (
	"fmt"
	"math"
	"strings"

	"resume-parser-go/internal/types"
)

// roleSkillTemplate 常见职位的技能要求模板
type roleSkillTemplate struct {
	Role   string
	Skills []string
}

var roleSkillTemplates = []roleSkillTemplate{
	{"Frontend Developer", []string{
		"HTML", "CSS", "JavaScript", "React", "Angular", "Vue.js", "Responsive Design",
		"UI/UX", "Git", "Testing", "Performance Optimization",
	}},
	{"Backend Developer", []string{
		"Python", "Java", "Node.js", "SQL", "NoSQL", "API Design", "Authentication",
		"Security", "Docker", "Microservices", "Cloud Services",
	}},
	{"Full Stack Developer", []string{
		"HTML", "CSS", "JavaScript", "React", "Angular", "Vue.js", "Python", "Java", "Node.js",
		"SQL", "NoSQL", "API Design", "Git", "Docker", "Cloud Services",
	}},
	{"Data Scientist", []string{
		"Python", "R", "SQL", "Machine Learning", "Deep Learning", "Data Visualization",
		"Statistical Analysis", "Pandas", "NumPy", "TensorFlow", "PyTorch",
	}},
	{"DevOps Engineer", []string{
		"Linux", "Scripting", "CI/CD", "Docker", "Kubernetes", "Cloud Services",
		"Monitoring", "Security", "Networking", "Infrastructure as Code",
	}},
	{"Mobile Developer", []string{
		"Swift", "Kotlin", "Java", "React Native", "Flutter", "Mobile UI Design",
		"API Integration", "Performance Optimization", "App Store Deployment",
	}},
	{"UI/UX Designer", []string{
		"Figma", "Sketch", "Adobe XD", "User Research", "Wireframing", "Prototyping",
		"Visual Design", "Interaction Design", "Usability Testing",
	}},
	{"Blockchain Developer", []string{
		"Solidity", "Ethereum", "Smart Contracts", "Web3.js", "Truffle", "Hardhat",
		"Blockchain Architecture", "Cryptography", "DApps", "JavaScript", "Security",
	}},
}

// fallbackRole 未知职位时使用的通用模板
const fallbackRole = "Full Stack Developer"

// courseEntry 技能到课程链接的映射条目，声明顺序决定部分匹配时的查找顺序
type courseEntry struct {
	Skill string
	URL   string
}

var courseCatalog = []courseEntry{
	{"Python", "https://www.udemy.com/course/complete-python-bootcamp/"},
	{"JavaScript", "https://www.udemy.com/course/the-complete-javascript-course/"},
	{"React", "https://www.udemy.com/course/react-the-complete-guide-incl-redux/"},
	{"Angular", "https://www.udemy.com/course/the-complete-guide-to-angular-2/"},
	{"Vue.js", "https://www.udemy.com/course/vuejs-2-the-complete-guide/"},
	{"Node.js", "https://www.udemy.com/course/nodejs-the-complete-guide/"},
	{"SQL", "https://www.udemy.com/course/the-complete-sql-bootcamp/"},
	{"MongoDB", "https://www.udemy.com/course/mongodb-the-complete-developers-guide/"},
	{"NoSQL", "https://www.udemy.com/course/mongodb-the-complete-developers-guide/"},
	{"AWS", "https://www.udemy.com/course/aws-certified-solutions-architect-associate/"},
	{"Docker", "https://www.udemy.com/course/docker-and-kubernetes-the-complete-guide/"},
	{"Kubernetes", "https://www.udemy.com/course/kubernetes-microservices/"},
	{"Machine Learning", "https://www.coursera.org/learn/machine-learning"},
	{"Deep Learning", "https://www.coursera.org/specializations/deep-learning"},
	{"Blockchain", "https://www.udemy.com/course/blockchain-developer/"},
	{"Solidity", "https://www.udemy.com/course/ethereum-and-solidity-the-complete-developers-guide/"},
	{"Web3", "https://www.udemy.com/course/web3-blockchain-developer/"},
	{"API Design", "https://www.udemy.com/course/nodejs-api-masterclass/"},
	{"Authentication", "https://www.udemy.com/course/nodejs-the-complete-guide/"},
	{"Security", "https://www.udemy.com/course/web-security-essentials/"},
	{"Microservices", "https://www.udemy.com/course/microservices-with-node-js-and-react/"},
	{"Cloud Services", "https://www.udemy.com/course/aws-certified-solutions-architect-associate/"},
	{"Git", "https://www.udemy.com/course/git-complete/"},
	{"Testing", "https://www.udemy.com/course/javascript-unit-testing-the-practical-guide/"},
	{"CI/CD", "https://www.udemy.com/course/devops-with-docker-kubernetes-and-azure-devops/"},
	{"Java", "https://www.udemy.com/course/java-the-complete-java-developer-course/"},
	{"HTML", "https://www.udemy.com/course/design-and-develop-a-killer-website-with-html5-and-css3/"},
	{"CSS", "https://www.udemy.com/course/advanced-css-and-sass/"},
	{"TypeScript", "https://www.udemy.com/course/understanding-typescript/"},
	{"PHP", "https://www.udemy.com/course/php-for-complete-beginners-includes-msql-object-oriented/"},
	{"Ruby", "https://www.udemy.com/course/learn-to-code-with-ruby-lang/"},
	{"Swift", "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
	{"Kotlin", "https://www.udemy.com/course/kotlin-android-developer-masterclass/"},
	{"Go", "https://www.udemy.com/course/go-the-complete-developers-guide/"},
	{"Rust", "https://www.udemy.com/course/rust-lang/"},
	{"C#", "https://www.udemy.com/course/complete-csharp-masterclass/"},
	{"C++", "https://www.udemy.com/course/beginning-c-plus-plus-programming/"},
	{"UI/UX", "https://www.udemy.com/course/ui-ux-web-design-using-adobe-xd/"},
	{"Responsive Design", "https://www.udemy.com/course/responsive-web-design-tutorial-course-html5-and-css3-bootstrap/"},
	{"Linux", "https://www.udemy.com/course/linux-administration-bootcamp/"},
	{"Networking", "https://www.udemy.com/course/introduction-to-computer-networks/"},
	{"Infrastructure as Code", "https://www.udemy.com/course/terraform-beginner-to-advanced/"},
	{"Flutter", "https://www.udemy.com/course/flutter-bootcamp-with-dart/"},
	{"React Native", "https://www.udemy.com/course/react-native-the-practical-guide/"},
	{"Figma", "https://www.udemy.com/course/figma-ux-ui-design-user-experience-tutorial/"},
	{"Sketch", "https://www.udemy.com/course/sketch-design/"},
	{"Adobe XD", "https://www.udemy.com/course/adobe-xd-experience-design-ux-ui-design/"},
	{"User Research", "https://www.udemy.com/course/ux-research-methods/"},
	{"Wireframing", "https://www.udemy.com/course/wireframing-with-figma/"},
	{"Prototyping", "https://www.udemy.com/course/prototyping-in-figma/"},
	{"Visual Design", "https://www.udemy.com/course/visual-design-for-ui-ux-designers/"},
	{"Interaction Design", "https://www.udemy.com/course/interaction-design-for-usability/"},
	{"Usability Testing", "https://www.udemy.com/course/usability-testing-for-ux-designers/"},
	{"Web3.js", "https://www.udemy.com/course/ethereum-and-solidity-the-complete-developers-guide/"},
	{"Truffle", "https://www.udemy.com/course/ethereum-dapp/"},
	{"Hardhat", "https://www.udemy.com/course/hardhat-tutorial-ethereum/"},
	{"Cryptography", "https://www.udemy.com/course/cryptography-for-beginners/"},
	{"DApps", "https://www.udemy.com/course/ethereum-dapp/"},
	{"Performance Optimization", "https://www.udemy.com/course/website-performance/"},
}

// AnalyzeSkillGap 计算候选人技术技能与目标技能列表的差距。
//
// 对每个目标技能依次尝试：精确匹配（小写比较）、双向包含、前4或
// 后4字符相同（双方长度均大于3时）。命中进入 matching，否则进入
// missing。匹配率为 round(matching/required*100)，目标列表为空时为0。
func AnalyzeSkillGap(candidateSkills, requiredSkills []string) *types.SkillGapReport {
	normalizedCandidate := make([]string, len(candidateSkills))
	for i, s := range candidateSkills {
		normalizedCandidate[i] = strings.ToLower(s)
	}

	matching := []string{}
	missing := []string{}

	for _, required := range requiredSkills {
		if skillMatches(strings.ToLower(required), normalizedCandidate) {
			matching = append(matching, required)
		} else {
			missing = append(missing, required)
		}
	}

	matchPercentage := 0
	if len(requiredSkills) > 0 {
		matchPercentage = int(math.Round(float64(len(matching)) / float64(len(requiredSkills)) * 100))
	}

	return &types.SkillGapReport{
		CandidateSkills:       candidateSkills,
		RequiredSkills:        requiredSkills,
		MatchingSkills:        matching,
		MissingSkills:         missing,
		MatchPercentage:       matchPercentage,
		CourseRecommendations: recommendCourses(missing),
	}
}

// RoleSkillGap 按职位模板做技能差距分析，未知职位退回通用模板，
// 并在差距报告上附加文字建议。
func RoleSkillGap(candidateSkills []string, jobRole string) *types.SkillGapReport {
	required := requiredSkillsForRole(jobRole)

	report := AnalyzeSkillGap(candidateSkills, required)
	report.JobRole = jobRole
	report.Recommendations = buildRecommendations(report.MissingSkills, report.MatchPercentage)

	return report
}

func requiredSkillsForRole(jobRole string) []string {
	for _, tpl := range roleSkillTemplates {
		if tpl.Role == jobRole {
			return tpl.Skills
		}
	}
	for _, tpl := range roleSkillTemplates {
		if tpl.Role == fallbackRole {
			return tpl.Skills
		}
	}
	return nil
}

// skillMatches 模糊技能匹配：精确、双向包含、首4/尾4字符相同
func skillMatches(requiredLower string, candidatesLower []string) bool {
	for _, cand := range candidatesLower {
		if requiredLower == cand {
			return true
		}
	}
	for _, cand := range candidatesLower {
		if strings.Contains(cand, requiredLower) || strings.Contains(requiredLower, cand) {
			return true
		}
		if len(requiredLower) > 3 && len(cand) > 3 &&
			(requiredLower[:4] == cand[:4] || requiredLower[len(requiredLower)-4:] == cand[len(cand)-4:]) {
			return true
		}
	}
	return false
}

// recommendCourses 为缺失技能查找课程链接：先精确匹配目录键，
// 再按目录顺序做双向包含匹配，查不到的技能不出现在结果中
func recommendCourses(missingSkills []string) map[string]string {
	recommendations := map[string]string{}

	for _, skill := range missingSkills {
		if url, ok := exactCourse(skill); ok {
			recommendations[skill] = url
			continue
		}
		skillLower := strings.ToLower(skill)
		for _, entry := range courseCatalog {
			keyLower := strings.ToLower(entry.Skill)
			if strings.Contains(skillLower, keyLower) || strings.Contains(keyLower, skillLower) {
				recommendations[skill] = entry.URL
				break
			}
		}
	}

	return recommendations
}

func exactCourse(skill string) (string, bool) {
	for _, entry := range courseCatalog {
		if entry.Skill == skill {
			return entry.URL, true
		}
	}
	return "", false
}

func buildRecommendations(missingSkills []string, matchPercentage int) []string {
	recommendations := []string{}

	if len(missingSkills) > 0 {
		top := missingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Consider learning %s to improve your qualifications for this role.", strings.Join(top, ", ")))
	}

	switch {
	case matchPercentage < 50:
		recommendations = append(recommendations, "Your skill set might be better suited for a different role or consider upskilling.")
	case matchPercentage < 70:
		recommendations = append(recommendations, "You have a good foundation but would benefit from additional training.")
	default:
		recommendations = append(recommendations, "You have a strong match for this role!")
	}

	return recommendations
}
