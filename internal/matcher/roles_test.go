package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendRoles(t *testing.T) {
	roles := RecommendRoles([]string{"Python"})

	assert.Equal(t, []string{"Python Developer", "Data Scientist", "Backend Developer"}, roles)
}

func TestRecommendRolesBidirectionalContainment(t *testing.T) {
	// 技能与映射键双向包含即命中，"Advanced Python" 同样匹配 Python 规则
	roles := RecommendRoles([]string{"Advanced Python"})

	assert.Equal(t, []string{"Python Developer", "Data Scientist", "Backend Developer"}, roles)
}

func TestRecommendRolesTruncatedToFive(t *testing.T) {
	roles := RecommendRoles([]string{"Python", "JavaScript"})

	assert.Equal(t, []string{
		"Python Developer", "Data Scientist", "Backend Developer",
		"Frontend Developer", "Full Stack Developer",
	}, roles)
}

func TestRecommendRolesDeduplicated(t *testing.T) {
	// Python 与 SQL 都指向 Backend Developer，只保留首次出现
	roles := RecommendRoles([]string{"Python", "SQL"})

	assert.Equal(t, []string{
		"Python Developer", "Data Scientist", "Backend Developer",
		"Database Administrator", "Data Analyst",
	}, roles)
}

func TestRecommendRolesEmptyInput(t *testing.T) {
	roles := RecommendRoles(nil)

	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}

func TestRecommendRolesUnknownSkill(t *testing.T) {
	assert.Empty(t, RecommendRoles([]string{"Underwater Basket Weaving"}))
}
