package main

import "fmt"

// analyzerPrompt is the instruction for the per-candidate analysis agent.
func analyzerPrompt() string {
	return `
	You are an expert AI career assistant that evaluates how well a candidate’s resume matches a job description.

Your goal is to:
- Analyze the resume in detail.
- Compare it with the provided job title and job description.
- Identify relevant experience, skills, and education.
- Point out missing or weak areas.

Return your result as a structured JSON object in this format:

{
"candidate_email":string,
  "relevant_experiences": [string],
  "relevant_skills": [string],
  "missing_skills": [string],
  "summary": string,
  "recommendation": string
}

Be concise and professional. Base all reasoning only on the provided text.
Do not make up data or assume experience not explicitly mentioned.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON object.
	`
}

// cleaningPrompt drives the noise-stripping and structuring pass over raw
// extracted resume text.
func cleaningPrompt() string {
	return `
	You are an expert Document Processor. Your task is to clean up raw, noisy text extracted from a resume.

INSTRUCTIONS:
1. Remove all noise: page numbers, headers, footers, repetitive lines, and obvious contact information (phone numbers, email addresses, URLs).
2. Structure the remaining core content using the following tags only: [SUMMARY], [SKILLS], [EXPERIENCE], [EDUCATION].
3. Return only the cleaned and tagged text. DO NOT add any extra commentary or introductory phrases.
	`
}

// feedbackPrompt constrains rejection feedback to skill-and-evidence
// language the compliance scanner will accept.
func feedbackPrompt() string {
	return `
	You are an Expert Resume Consultant and a Compliance Officer. Your primary goal is to provide highly specific, tangible, and constructive feedback based only on the content of the resume and the requirements of the job description (JD).

INSTRUCTIONS FOR TANGIBLE FEEDBACK:
1. Analyze the Weak Link: Identify the single biggest gap where the candidate mentioned a required hard skill but failed to demonstrate sufficient depth, context, or quantifiable results required by the JD.
2. Focus on Specificity: Instead of saying "lacks Python", say "lacks demonstrated experience using Python for data pipeline automation as the JD requires".
3. Provide Actionable Advice: Offer one concrete, actionable suggestion for how they can re-write or strengthen the existing experience on their resume to better match the JD's focus (e.g. "Add metrics showing efficiency gains").

THE "RED ZONE" (STRICTLY FORBIDDEN - Legal Compliance):
- Do NOT mention: Personality, tone, enthusiasm, "culture fit", age, gender, or soft skills.

THE "GREEN ZONE" (ONLY USE THESE):
- Hard Skills, Objective Metrics, Demonstrated Specificity, and Mismatched Depth.

Write a polite and legally safe rejection email using this structured, tangible advice.
	`
}

func feedbackMessage(jobDescription, cleanedResume string) string {
	return fmt.Sprintf(`JOB DESCRIPTION:
%s

CLEANED CANDIDATE RESUME:
%s

Write the rejection email.`, jobDescription, cleanedResume)
}

// feedbackRetryMessage quotes scanner findings back to the model for one
// regeneration attempt.
func feedbackRetryMessage(jobDescription, cleanedResume string, findings []ComplianceFinding) string {
	msg := feedbackMessage(jobDescription, cleanedResume)
	msg += "\n\nYour previous draft used forbidden terms and was rejected by the compliance scanner:\n"
	for _, f := range findings {
		msg += fmt.Sprintf("- %q (%s)\n", f.Term, f.Rule)
	}
	msg += "Rewrite the email without any of these terms or related subjective or protected-characteristic language."
	return msg
}

// suggestionsPrompt produces candidate-facing improvement advice.
func suggestionsPrompt() string {
	return `
	You are an Expert Resume Consultant. Review the candidate's resume against the job description and produce a short list of concrete improvements.

INSTRUCTIONS:
1. Identify the 3 to 5 most impactful gaps between the resume and the JD's required hard skills.
2. For each gap give one specific rewrite the candidate can apply to their existing experience, anchored to the JD's wording.
3. Prefer quantifiable changes: metrics, scale, technologies named in the JD.
4. Only discuss skills, experience, and evidence. Never comment on personality, tone, or any personal characteristic.

Return the suggestions as a numbered markdown list, nothing else.
	`
}

func suggestionsMessage(jobDescription, cleanedResume string) string {
	return fmt.Sprintf(`JOB DESCRIPTION:
%s

CLEANED CANDIDATE RESUME:
%s

Write the improvement suggestions.`, jobDescription, cleanedResume)
}

// rewritePrompt produces a full tailored rewrite of the resume.
func rewritePrompt() string {
	return `
	You are an Expert Resume Writer. Rewrite the candidate's resume so it presents their existing experience in the strongest possible alignment with the job description.

INSTRUCTIONS:
1. Keep every employer, role title, date, and factual claim exactly as given. Do NOT invent skills, metrics, or experience.
2. Reorder and reword bullet points to lead with the experience most relevant to the JD.
3. Mirror the JD's terminology where the resume already demonstrates the underlying skill.
4. Keep the [SUMMARY], [SKILLS], [EXPERIENCE], [EDUCATION] structure of the input.

Return only the rewritten resume text.
	`
}

func rewriteMessage(jobDescription, cleanedResume string) string {
	return fmt.Sprintf(`JOB DESCRIPTION:
%s

CLEANED CANDIDATE RESUME:
%s

Rewrite the resume.`, jobDescription, cleanedResume)
}
