package core

import "regexp"

// citationWindow is the character distance searched around a matched
// fragment for citation evidence.
const citationWindow = 120

// citationRegexp recognizes the citation forms that suppress a flag:
// parenthetical references, bracketed numerics, legal citations, case
// names, figure/table references, page references, numbered reports and
// institutional abbreviations.
var citationRegexp = regexp.MustCompile(
	`(?i)(?:` +
		`\([A-Z][a-z]+(?:\s+(?:et\s+al\.?|&\s+[A-Z][a-z]+))?,?\s*\d{4}\)` + // (Smith et al., 2024)
		`|` +
		`\[\d+\]` + // [1], [23]
		`|` +
		`\b\d+\s+[A-Z][a-z]+\.?\s+(?:\d+[a-z]?\s+)?(?:at\s+)?\d+` + // 42 U.S.C. § 1983
		`|` +
		`(?:Id\.|Ibid\.|Supra|Infra)\s` + // Legal citations
		`|` +
		`\b[A-Z][a-z]+\s+v\.?\s+[A-Z][a-z]+` + // Case names: Smith v. Jones
		`|` +
		`(?:Table|Fig(?:ure)?|Appendix|Exhibit)\s+[A-Z0-9]` + // Table 1, Fig. 3
		`|` +
		`\bp(?:p)?\.?\s*\d+` + // p. 12, pp. 34-56
		`|` +
		`(?:Report|Bulletin|Publication|Circular)\s+(?:No\.?|Number)\s+[\d-]+` + // Report No. 2023-47
		`|` +
		`(?:Nat'l|Fed\.|Dep't|Comm'n|Inst\.|Ass'n|Gov't)\s` + // Institutional abbreviations
		`|` +
		`\([\w\s.']+,\s*(?:at\s+)?\d{1,4}(?:\s*-\s*\d{1,4})?\)` + // (Source, at 15-23)
		`)`,
)
