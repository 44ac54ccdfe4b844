package gen

import "fmt"

const coachPersona = `You are InterviewCraft, an interview coach assistant.
Use the job context to provide concise, practical interview prep help.
When useful, propose follow-up questions, model answers, and improvement steps.`

func chatSystemPrompt(jobTitle, jobDescription string) string {
	return fmt.Sprintf("%s\n\nJob Title:\n%s\n\nJob Description:\n%s",
		coachPersona, jobTitle, jobDescription)
}

const insightsSystemPrompt = "You are an expert interview coach. Return ONLY valid JSON. No markdown, no extra text."

func insightsUserPrompt(jobTitle, jobDescription string) string {
	return fmt.Sprintf(`Generate structured interview preparation insights.

Job Title:
%s

Job Description:
%s

Return a JSON object with this exact shape:
{
  "roleSummary": "string",
  "requiredSkills": ["string"],
  "interviewTopics": ["string"],
  "codingFocusAreas": ["string"],
  "suggestedPracticeQuestions": ["string"],
  "days30_60_90": {
    "first30Days": ["string"],
    "days31To60": ["string"],
    "days61To90": ["string"]
  }
}`, jobTitle, jobDescription)
}

const resumeSystemPrompt = "You are an expert resume reviewer and interview coach. Return ONLY valid JSON."

func resumeUserPrompt(jobTitle, jobDescription, resumeText string) string {
	return fmt.Sprintf(`Analyze the resume against the target role and return specific, actionable feedback.

Job Title:
%s

Job Description:
%s

Resume Text:
%s

Return JSON with this exact shape:
{
  "overallAssessment": "string",
  "strengths": ["string"],
  "gaps": ["string"],
  "rewriteSuggestions": ["string"],
  "atsTips": ["string"]
}`, jobTitle, jobDescription, resumeText)
}
