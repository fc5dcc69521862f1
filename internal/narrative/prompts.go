package narrative

import (
	"fmt"
	"strings"

	"github.com/ontrackhk/ontrack/internal/domain"
)

const careerPathsSystemPrompt = "You are a career counselor specializing in Holland Code career matching. Provide detailed and specific career paths."

const emergingCareersSystemPrompt = "You are an experienced career advisor specializing in emerging industries and future job markets in Hong Kong."

const personalitySystemPrompt = "You are a career counselor specializing in Holland Code analysis."

const chatSystemPrompt = `You are a professional career counselor who:
1. Has deep knowledge of Holland Codes and career development
2. Thinks with both entrepreneurial and creative mindsets
3. Provides logical and structured advice
4. Always responds in Traditional Chinese
5. Focuses on practical and actionable suggestions`

func buildCareerPathsPrompt(hollandCode string, industries []string) string {
	return fmt.Sprintf(`Based on the following information:
- Holland Code: %s
- Matching Industries: %s

Please provide 5 specific career paths that match this profile. For each career path:
1. Job Title
2. Detailed job description
3. Required skills
4. Education requirements
5. Career progression

Format each career path with // as separators.
Example format:
Job Title: Software Engineer
Description: A Software Engineer designs, develops, and maintains computer software and systems. They use programming languages like Python, Java, or C++ to create applications that solve problems or enhance user experiences.
Required Skills: Programming languages (Python, Java), problem-solving, teamwork
Education: Bachelor's degree in Computer Science or related field; relevant courses or certifications in programming, algorithms, and software development can also be helpful.
Career Progression: Junior Developer -> Senior Developer -> Tech Lead -> Software Architect
//
[Next career path...]`,
		hollandCode, strings.Join(industries, ", "))
}

func buildEmergingCareersPrompt(primaryCode string, dseAverage float64, industries []string, interests Interests) string {
	return fmt.Sprintf(`Based on the following user profile and preferences:

Professional Profile:
- Holland Code: %s (Primary personality type)
- Academic Performance: DSE Average Score of %.1f/7
- Industry Matches: %s

Personal Interests & Values:
- Favorite Sport: %s
- Activity they're passionate about: %s
- First purchase as a billionaire: %s

Please suggest 10 emerging or future-oriented career paths (In Traditional Chinese) that:
1. Align with their Holland Code personality type
2. Match their interests and values
3. Are considered emerging or future industries
4. Take into account their academic performance level

For each career path, provide:
1. Job Title (emerging/future role)
2. Detailed description of the role
3. Key skills required
4. Education path recommendation
5. Future growth potential

Format each career with // as separators.
Example format:
Job Title: Metaverse Experience Designer
Description: A Metaverse Experience Designer creates immersive digital environments and interactions within virtual worlds.
Required Skills: VR/AR development, 3D modeling, user psychology, spatial design
Education: Bachelor's in Digital Design, Interactive Media, or related field
Growth Potential: Strong demand as VR and AR technologies expand across entertainment, retail, education, and healthcare.
//
[Next career...]`,
		primaryCode, dseAverage, strings.Join(industries, ", "),
		interests.FavoriteSport, interests.PassionateActivity, interests.BillionairePurchase)
}

func buildPersonalityPrompt(codes []string, industries []string, scores map[domain.Category]int) string {
	primary := ""
	if len(codes) > 0 {
		primary = codes[0]
	}
	return fmt.Sprintf(`Based on the following user profile:
- Primary Holland Code: %s
- All Possible Codes: %s
- Matching Industries: %s
- Category Scores: %s

Please provide a detailed personality analysis (Do not mention the word "Holland Code" in your response) in Traditional Chinese (around 300-400 words) that includes:
1. A brief explanation of their Holland Code personality type
2. Their key strengths and potential areas for development
3. Recommended academic paths and suggested roles in group academic activities or projects
4. Tips for personal and professional development

Format the response in these sections:
性格特質：
[Content]

學術發展建議：
[Content]`,
		primary, strings.Join(codes, ", "), strings.Join(industries, ", "), formatScores(scores))
}

func buildChatPrompt(p *domain.Profile, dseAverage float64, message string) string {
	return fmt.Sprintf(`用戶資料：
- Holland Code: %s
- Holland Code組合: %s
- 匹配行業: %s
- DSE平均分: %.2f
- 性格特質分數: %s

用戶問題：%s

請提供詳細回應(Do not mention the word "Holland Code" in your response)，要求：
1. 針對用戶情況
2. 提供可行建議
3. 保持鼓勵支持
4. 重點清晰
5. 具體可行

回應格式：
分析：
[分析內容]

建議：
[建議內容]

行動計劃：
[具體步驟]`,
		p.HollandCode, strings.Join(p.AllHollandCodes, " / "),
		strings.Join(p.MatchingIndustries, ", "), dseAverage, formatScores(p.CategoryScores), message)
}

// presetQuestions returns the four canned chat questions, personalized
// with the user's profile.
func presetQuestions(p *domain.Profile, dseAverage float64) map[int]string {
	return map[int]string{
		1: fmt.Sprintf(`基於你的Holland Code (%s)和性格特質分數：
%s
請分析我應該發展的技能：
1. 核心技能
2. 輔助技能
3. 未來發展潛力
4. 實際行動建議`, p.HollandCode, formatScores(p.CategoryScores)),

		2: fmt.Sprintf(`關於這些適合我性格的行業：
%s
請分析：
1. 行業特點和發展趨勢
2. 入行要求和準備工作
3. 職業發展路徑
4. 相關進修建議`, strings.Join(p.MatchingIndustries, ", ")),

		3: fmt.Sprintf(`基於我的Holland Code組合 (%s)，
建議我參與什麼課外活動？
請從以下角度分析：
1. 領導才能發展
2. 專業技能提升
3. 人際網絡建立
4. 實戰經驗累積`, strings.Join(p.AllHollandCodes, " / ")),

		4: fmt.Sprintf(`關於我的JUPAS選科（DSE預計平均分：%.2f）：
1. 現有成績分析
2. 提升競爭力建議
3. 備選方案規劃
4. 面試準備策略`, dseAverage),
	}
}

// formatScores renders category tallies in fixed alphabetical order so
// prompts are deterministic.
func formatScores(scores map[domain.Category]int) string {
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if n, ok := scores[c]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", c, n))
		}
	}
	return strings.Join(parts, ", ")
}
