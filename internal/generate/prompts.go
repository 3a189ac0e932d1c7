package generate

import "fmt"

// System instructions frame the model role per artifact; the user prompt
// carries the rules, the format contract, and the source text.

const mcqGeneratorSystem = `You are a medical exam question generator. You create multiple-choice questions from lecture material, strictly following the supplied rules. Focus on clinical reasoning, accuracy, and adherence to medical exam standards such as USMLE.`

const mcqVerifierSystem = `You are a medical exam question verifier and corrector. You analyze multiple-choice questions for rule violations, correct them where needed, and return them in exactly the required row format.`

const sectionGeneratorSystem = `You are a medical lecture editor. You restructure lecture material into titled sections, strictly following the supplied rules, without inventing content that is not in the source text.`

const sectionVerifierSystem = `You are a medical lecture reviewer. You check restructured sections against the source text and the supplied rules, correct violations and omissions, and return the corrected sections in the same JSON shape.`

const mindMapSystem = `You are a medical lecture analyst. You distill lecture material into a hierarchical topic tree, strictly following the supplied rules.`

const mcqRowFormat = `**Required output format (strict):**
One question per line, as a pipe-delimited row with exactly 7 fields:

| question stem | option a | option b | option c | option d | option e | correct answer |

The correct answer field must repeat the full text of the correct option, verbatim.
Escape any literal pipe character inside a field as \|.
Output ONLY the rows. No numbering, headers, explanations, or extra text.`

func mcqGeneratePrompt(rules, chunk string, count int) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Generate exactly %d multiple-choice questions from the text below. Each question has a stem (clinical vignette or direct question) and five homogeneous, plausible answer choices.

%s

**Source text:**

%s
`, rules, count, mcqRowFormat, chunk)
}

func mcqVerifyPrompt(rules, candidate, source string) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Review the question rows below against the rules and the source text. Correct any violations: formatting, factual drift from the source, implausible or duplicate options, answers that do not match an option. Return every question, corrected where needed.

%s

**Questions to verify and correct:**

%s

**Source text:**

%s
`, rules, mcqRowFormat, candidate, source)
}

const sectionFormat = `**Required output format (strict):**
A JSON array of sections. Each section is an object:
  {"title": string, "type": "paragraph" | "list" | "table", "content": ...}
where content is a string for "paragraph", an array of strings for "list", and an
array of {"key_point": string, "details": string} objects for "table".
Output ONLY the JSON array. No prose, no code fences.`

func summaryGeneratePrompt(rules, chunk string, count int) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Summarize the text below into roughly %d concise sections. Prefer "list" sections for enumerable facts and "table" sections for comparisons; keep each section focused on one idea.

%s

**Source text:**

%s
`, rules, count, sectionFormat, chunk)
}

func remakeGeneratePrompt(rules, chunk string, count int) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Rewrite the text below into roughly %d sections without dropping information. This is a high-fidelity restructuring, not a summary: every fact in the source must survive. Use "table" sections with key_point/details rows wherever the material allows.

%s

**Source text:**

%s
`, rules, count, sectionFormat, chunk)
}

func sectionVerifyPrompt(rules, candidate, source string) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Review the sections below against the source text and the rules. Correct violations, restore dropped facts, and fix any malformed sections. Return the full corrected section list.

%s

**Sections to verify and correct:**

%s

**Source text:**

%s
`, rules, sectionFormat, candidate, source)
}

func mindMapPrompt(rules, source string) string {
	return fmt.Sprintf(`Rules you must follow strictly:
%s

**Your task:** Distill the text below into a hierarchical topic tree for a mind map.

**Required output format (strict):**
A single JSON object:
  {"title": string, "children": [node, ...], "hint": string (optional)}
where each child is the same node shape. The root title names the lecture topic.
Set "hint" to "comparison_table" on a first-level node whose children compare
variants feature by feature; omit it otherwise. Keep titles short.
Output ONLY the JSON object. No prose, no code fences.

**Source text:**

%s
`, rules, source)
}
