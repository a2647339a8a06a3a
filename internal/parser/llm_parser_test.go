package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用LLM模型模拟器
type mockChatModel struct {
	// 预设的模拟响应
	mockResponse string
	// 预设错误，非nil时Generate直接返回该错误
	err error
}

func (m *mockChatModel) Generate(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: m.mockResponse,
	}, nil
}

func (m *mockChatModel) Stream(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, nil
}

func (m *mockChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

const mockResumeJSON = `{
  "Full Name": "Jane Smith",
  "Contact Number": "555-123-4567",
  "Email Address": "jane@example.com",
  "Location": "San Francisco, CA",
  "LinkedIn": "linkedin.com/in/jane-smith",
  "GitHub": "janesmith",
  "Skills": { "Technical": ["Python", "React"], "Soft": ["Communication"] },
  "Education": [{ "Degree": "BSc Computer Science", "Institution": "XYZ University", "Years": "2015-2019" }],
  "Work Experience": [{ "Company": "Acme Corp", "Role": "Senior Developer", "Years": "2018-2022" }],
  "Certifications": ["AWS Certified Developer"],
  "Languages": ["English"],
  "Suggested Category": "Software Development",
  "Recommended Roles": ["Backend Developer"]
}`

func TestLLMParserParse(t *testing.T) {
	p := NewLLMParser(&mockChatModel{mockResponse: mockResumeJSON})

	record, err := p.Parse(context.Background(), "Jane Smith resume text")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", record.FullName)
	assert.Equal(t, "jane@example.com", record.Email)
	assert.Equal(t, "555-123-4567", record.Phone)
	// 模型给出的链接引用同样走规范化
	assert.Equal(t, "https://www.linkedin.com/in/jane-smith", record.LinkedIn)
	assert.Equal(t, "https://github.com/janesmith", record.GitHub)
	assert.Equal(t, []string{"Python", "React"}, record.Skills.Technical)
	assert.Equal(t, []string{"Communication"}, record.Skills.Soft)
	assert.Equal(t, "Software Development", record.SuggestedCategory)
	assert.Equal(t, []string{"Backend Developer"}, record.RecommendedRoles)
	require.Len(t, record.Education, 1)
	assert.Equal(t, "XYZ University", record.Education[0].Institution)
}

func TestLLMParserExtractsJSONFromMarkdownFence(t *testing.T) {
	p := NewLLMParser(&mockChatModel{mockResponse: "```json\n" + mockResumeJSON + "\n```"})

	record, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", record.FullName)
}

func TestLLMParserFlatSkillListNormalized(t *testing.T) {
	p := NewLLMParser(&mockChatModel{
		mockResponse: `{"Full Name": "Jane Smith", "Skills": ["Python", "Docker"]}`,
	})

	record, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	// 裸列表形状的技能归入 Technical
	assert.Equal(t, []string{"Python", "Docker"}, record.Skills.Technical)
	assert.Empty(t, record.Skills.Soft)
}

func TestLLMParserErrorSentinel(t *testing.T) {
	p := NewLLMParser(&mockChatModel{mockResponse: `{"error": "not a resume"}`})

	_, err := p.Parse(context.Background(), "grocery list")

	assert.Error(t, err)
}

func TestLLMParserNoJSONInResponse(t *testing.T) {
	p := NewLLMParser(&mockChatModel{mockResponse: "I cannot parse this document."})

	_, err := p.Parse(context.Background(), "resume text")

	assert.Error(t, err)
}

func TestLLMParserModelFailure(t *testing.T) {
	p := NewLLMParser(&mockChatModel{err: errors.New("connection refused")})

	_, err := p.Parse(context.Background(), "resume text")

	assert.Error(t, err)
}

func TestLLMParserProjectsAlwaysRuleExtracted(t *testing.T) {
	p := NewLLMParser(&mockChatModel{mockResponse: mockResumeJSON})

	text := "Jane Smith\nProjects\nChat App\nreal-time messaging"
	record, err := p.Parse(context.Background(), text)

	require.NoError(t, err)
	require.Len(t, record.Projects, 2)
	assert.Equal(t, "Chat App", record.Projects[1].Name)
	assert.Equal(t, "real-time messaging", record.Projects[1].Description)
}

func TestLLMParserRecommendedRolesFallback(t *testing.T) {
	p := NewLLMParser(&mockChatModel{
		mockResponse: `{"Full Name": "Jane Smith", "Skills": {"Technical": ["Python"], "Soft": []}}`,
	})

	record, err := p.Parse(context.Background(), "resume text")

	require.NoError(t, err)
	// 模型未给出推荐职位时按技术技能兜底推荐
	assert.Equal(t, []string{"Python Developer", "Data Scientist", "Backend Developer"}, record.RecommendedRoles)
}
