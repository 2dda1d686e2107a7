package core

// General structural patterns, active for every domain.
//
// Tier 1 targets ideological framing (consensus-as-evidence, dissent
// dismissal), tier 2 psychological levers (fear, shame, false binaries),
// tier 3 institutional authority moves.

var generalPatterns = []*StructuralPattern{
	{
		ID:   "CONSENSUS_AS_EVIDENCE",
		Name: "Consensus Substituted for Evidence",
		Description: "Uses agreement among people or institutions as proof of truth, " +
			"rather than presenting the underlying evidence.",
		PITTier:   1,
		Severity:  SeverityHigh,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:(?:everyone|everybody)\s+(?:knows?|agrees?|understands?|recognizes?|accepts?|sees?|can\s+see)|` +
				`all\s+(?:\w+\s+)?(?:experts?|scientists?|researchers?)|` +
				`most\s+(?:people|experts?|scholars?)|` +
				`the\s+(?:\w+\s+)?consensus(?:\s+\w+)?|` +
				`(?:experts?|scientists?|researchers?|scholars?)\s+(?:unanimously|overwhelmingly)\s+` +
				`(?:agree|concur|confirm)|` +
				`unanimously\s+(?:agree|agreed|concur|accept|endorse)|` +
				`widely\s+accepted|universally\s+recognized|` +
				`broadly\s+agreed|generally\s+accepted|` +
				`it\s+is\s+(?:widely|broadly|universally)\s+(?:known|accepted|recognized))\b`,
		},
		MinMatches: 1,
		// Benign uses of "consensus" as a statistical term do not flag.
		Exclusions: []string{
			`consensus\s+(?:forecast|estimate|projection|expectation|view|number|figure|range)\b`,
		},
	},
	{
		ID:   "CLAIM_WITHOUT_CITATION",
		Name: "Authoritative Claim Without Citation",
		Description: "Asserts something as established fact using authority language " +
			"but provides no source, citation, or verifiable reference.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:studies?\s+(?:show|prove|demonstrate|confirm|indicate|suggest|find|reveal)|` +
				`research\s+(?:shows?|proves?|demonstrates?|confirms?|indicates?|suggests?|has\s+shown)|` +
				`experts?\s+(?:say|agree|confirm|believe|have\s+(?:found|shown|concluded))|` +
				`science\s+(?:shows?|proves?|has\s+(?:shown|proven|established))|` +
				`data\s+(?:shows?|proves?|suggests?|confirms?|indicates?)|` +
				`evidence\s+(?:shows?|suggests?|indicates?|confirms?|demonstrates?))\b`,
		},
		MinMatches:      1,
		SuppressIfCited: true,
	},
	{
		ID:   "DISSENT_DISMISSAL",
		Name: "Dissent Dismissed by Label",
		Description: "Opposing viewpoints are dismissed through labeling rather than " +
			"substantive rebuttal. The label substitutes for argument.",
		PITTier:   1,
		Severity:  SeverityHigh,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:fringe|debunked|conspiracy|discredited|pseudoscience|` +
				`junk\s+science|misinformation|disinformation|` +
				`deniers?|denialists?|cranks?|quacks?|` +
				`has\s+been\s+(?:thoroughly\s+)?(?:debunked|disproven|discredited|refuted)|` +
				`no\s+(?:serious|credible|reputable)\s+(?:scientist|researcher|expert|scholar))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FALSE_BINARY",
		Name: "False Binary / False Dilemma",
		Description: "Frames a situation as having only two options when additional " +
			"alternatives exist. Forces a choice between extremes.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:either\s+.{3,60}\s+or\b|` +
				`you(?:'re|\s+are)\s+either\s+.{3,40}\s+or\b|` +
				`(?:only|just)\s+two\s+(?:options?|choices?|alternatives?|paths?)|` +
				`there(?:'s|\s+is)\s+(?:only|just)\s+(?:one\s+(?:way|option|choice))|` +
				`(?:no|without\s+(?:any)?)\s+(?:middle\s+ground|third\s+(?:option|way|alternative|choice)|other\s+(?:option|choice|alternative)s?)|` +
				`(?:a\s+)?(?:clear|stark|simple|binary)\s+choice\s*:.{3,60}\s+or\s+|` +
				`if\s+(?:you(?:'re|\s+are))\s+not\s+.{3,40}(?:then|,)\s+you(?:'re|\s+are))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FEAR_URGENCY",
		Name: "Fear-Based Urgency",
		Description: "Uses fear, catastrophic language, or artificial time pressure " +
			"to bypass critical evaluation and force compliance.",
		PITTier:   2,
		Severity:  SeverityHigh,
		Principle: "Agency",
		Indicators: []string{
			`\b(?:catastroph(?:e|ic)|devastating|irreversibl[ey]|` +
				`point\s+of\s+no\s+return|too\s+late|` +
				`(?:act|decide|move)\s+(?:now|immediately|before\s+it(?:'s|\s+is)\s+too\s+late)|` +
				`(?:running\s+out\s+of|no)\s+time|` +
				`(?:dire|grave|existential)\s+(?:threat|risk|consequences?|danger)|` +
				`(?:complete|total|utter|imminent)\s+(?:collapse|destruction|failure|ruin|disaster)|` +
				`(?:window|opportunity)\s+(?:is\s+)?(?:closing|narrowing|disappearing|running\s+out)|` +
				`(?:crisis|emergency)\s+(?:demands?|requires?|necessitates?)|` +
				`(?:severe|permanent)\s+(?:and\s+)?(?:permanent|severe|irreversibl[ey]|lasting)|` +
				`consequences\s+will\s+be\s+(?:severe|dire|catastrophic|devastating|permanent)|` +
				`if\s+(?:we|you)\s+(?:don(?:'t|ot)|fail\s+to)\s+act)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "SHAME_LEVER",
		Name: "Shame or Social Pressure as Lever",
		Description: "Uses social shame, guilt, or peer pressure to coerce agreement " +
			"rather than persuading through evidence or argument.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Agency",
		Indicators: []string{
			`\b(?:any\s+(?:reasonable|rational|intelligent|educated|decent)\s+person|` +
				`only\s+(?:a\s+fool|an?\s+idiot|ignorant\s+people?)|` +
				`(?:right|wrong)\s+side\s+of\s+history|` +
				`history\s+will\s+(?:judge|remember|not\s+(?:forget|forgive))|` +
				`how\s+(?:can|could)\s+(?:you|anyone)\s+(?:possibly|seriously)|` +
				`(?:everyone|all)\s+(?:reasonable|intelligent|educated)\s+people?\s+` +
				`(?:know|agree|understand|accept))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "EMOTIONAL_SUBSTITUTION",
		Name: "Emotional Appeal Substituted for Argument",
		Description: "Replaces logical argument or evidence with emotional language " +
			"designed to produce a feeling rather than an understanding.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:(?:heartbreaking|shocking|outrageous|disgusting|appalling|` +
				`horrifying|terrifying|sickening|unconscionable)\s+(?:that|how|when)|` +
				`(?:simply|truly|absolutely|utterly)\s+(?:heartbreaking|devastating|` +
				`unconscionable|horrifying|appalling|outrageous)|` +
				`(?:the\s+)?(?:suffering|pain|devastation|tragedy|anguish)\s+` +
				`speaks?\s+for\s+(?:itself|themselves)|` +
				`no\s+(?:decent|reasonable|compassionate|caring|moral)\s+` +
				`(?:person|human|individual)\s+(?:could|would|can|should)|` +
				`(?:think\s+(?:of|about)\s+the\s+children|won(?:'t|\s+not)\s+` +
				`(?:someone|somebody)\s+think\s+of)|` +
				`(?:blood\s+on\s+(?:your|their)\s+hands|` +
				`how\s+(?:do\s+you|can\s+you)\s+(?:sleep|live\s+with)))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "CREDENTIAL_AS_PROOF",
		Name: "Credential Cited as Proof",
		Description: "Uses a person's or institution's credentials, title, or status " +
			"as the primary evidence for a claim, rather than the underlying argument.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Identity",
		Indicators: []string{
			`\b(?:(?:as\s+)?(?:a|the)\s+(?:leading|top|renowned|respected|` +
				`prominent|distinguished|eminent|preeminent)\s+` +
				`(?:expert|authority|scientist|researcher|professor|doctor|scholar)|` +
				`with\s+(?:over\s+|combined\s+)?(?:\d+|twenty|thirty|forty|fifty|sixty)\s+years?\s+(?:of\s+)?experience|` +
				`holders?\s+of\s+(?:advanced|doctoral|graduate|terminal|multiple)\s+degrees?|` +
				`(?:nobel|pulitzer|award)[- ]winning|` +
				`(?:harvard|stanford|mit|oxford|cambridge)[- ](?:trained|educated|based)|` +
				`(?:my|his|her|their|our|its)\s+(?:extensive|impressive|unparalleled|` +
				`unmatched|superior)\s+(?:credentials?|qualifications?|expertise|experience)|` +
				`(?:our\s+)?qualifications?\s+(?:speak|stand)\s+for\s+(?:them|it)sel(?:f|ves)|` +
				`credentials?\s+(?:speak|stand)\s+for\s+(?:them|it)sel(?:f|ves)|` +
				`(?:should\s+)?settle\s+this\s+debate|` +
				`less\s+qualified\s+(?:analysts?|experts?|researchers?|commentators?|` +
				`critics?|opponents?|voices?))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "INSTITUTIONAL_NEUTRALITY",
		Name: "Institutional Position Framed as Neutral",
		Description: "Presents an institution's stance as objective or neutral fact " +
			"rather than as one position among possible positions.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:(?:the\s+)?(?:official|established|accepted|recognized|authoritative|` +
				`institutional)\s+(?:position|view|stance|guidance|recommendation|consensus)|` +
				`according\s+to\s+(?:the\s+)?(?:official|established)\s+(?:position|guidance)|` +
				`(?:every|all)\s+(?:major|leading|reputable)\s+(?:regulatory|governing|` +
				`oversight|scientific|medical|professional)\s+(?:body|bodies|agency|agencies|` +
				`organization|institution)|` +
				`speaks?\s+with\s+(?:one|a\s+single|a\s+unified)\s+` +
				`(?:authoritative|unified|clear)\s+voice|` +
				`(?:as\s+)?(?:a|an)\s+(?:neutral|independent|impartial|objective|unbiased)\s+` +
				`(?:third\s+party|observer|arbiter|assessor|evaluator|authority|organization|body)|` +
				`(?:objectively|independently|impartially)\s+(?:and\s+)?(?:without|free\s+(?:from|of))\s+` +
				`(?:preference|bias|prejudice|partiality|favor)|` +
				`(?:reflects?|represents?)\s+the\s+evidence\s+(?:objectively|independently|impartially|neutrally)|` +
				`the\s+(?:CDC|WHO|FDA|NIH|AMA|ABA|SEC|EPA|DOJ|FBI)\s+` +
				`(?:has\s+)?(?:stated?|confirmed?|determined?|concluded?|established?))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "BUREAUCRATIC_OBSCURITY",
		Name: "Bureaucratic Language Obscuring Meaning",
		Description: "Uses dense institutional or bureaucratic jargon to make a simple " +
			"claim appear more authoritative or to obscure its actual meaning.",
		PITTier:   3,
		Severity:  SeverityLow,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:pursuant\s+to\s+(?:the\s+)?(?:aforementioned|foregoing|` +
				`operationalization|implementation|effectuation)|` +
				`(?:hereinafter|heretofore|hereinabove|notwithstanding\s+the\s+foregoing)|` +
				`it\s+(?:is|should\s+be)\s+(?:noted|observed|recognized)\s+that|` +
				`(?:the\s+)?(?:above-?referenced|above-?mentioned|above-?described|` +
				`aforementioned)\s+(?:matter|issue|subject|concern)|` +
				`(?:operationalization|effectuate|incentivize|synergize|` +
				`paradigm(?:atic)?|cross-?functional)\s+\w+\s+` +
				`(?:framework|paradigm|metrics?|protocol|methodology|mechanism))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "INEVITABILITY_FRAME",
		Name: "Inevitability Framing",
		Description: "Presents an outcome, trend, or position as historically inevitable " +
			"to discourage resistance or critical evaluation. Substitutes momentum " +
			"narrative for evidence.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Agency",
		Indicators: []string{
			`\b(?:(?:the\s+)?(?:inevitable|inexorable|inescapable|unstoppable)\s+` +
				`(?:march|trend|shift|move(?:ment)?|direction|trajectory|conclusion|outcome)|` +
				`(?:history|the\s+future|progress|time)\s+` +
				`(?:will\s+(?:show|prove|judge|vindicate|remember)|has\s+shown|is\s+(?:on\s+)?(?:our|the)\s+side)|` +
				`on\s+the\s+(?:right|wrong)\s+side\s+of\s+history|` +
				`(?:this\s+is\s+)?(?:the\s+(?:way|direction)\s+(?:the\s+)?(?:world|field|industry|market|profession)\s+` +
				`is\s+(?:heading|moving|going|trending))|` +
				`(?:there\s+is\s+no|(?:you|we)\s+can(?:no|')?t)\s+` +
				`(?:stopping|resisting|fighting|holding\s+back)\s+(?:this|the\s+(?:tide|trend|future|change)))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "APPEAL_TO_TRADITION",
		Name: "Appeal to Tradition / Precedent Inertia",
		Description: "Cites historical practice, tradition, or 'the way things have always been' " +
			"as justification for a position, without evaluating whether the tradition " +
			"is actually sound.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:(?:we(?:'ve|\s+have)?|they(?:'ve|\s+have)?|(?:it\s+)?has)\s+` +
				`always\s+(?:been\s+)?(?:done|worked|operated|functioned|practiced)` +
				`(?:\s+it)?\s+(?:this|that)\s+way|` +
				`(?:time[- ](?:tested|honored|proven)|long[- ]standing|age[- ]old)\s+` +
				`(?:practice|tradition|principle|approach|method|wisdom|custom)\s+` +
				`(?:dictates?|requires?|demands?|shows?|proves?|tells?\s+us)|` +
				`(?:depart(?:ing|ure)?|deviat(?:ing|ion)?|break(?:ing)?)\s+from\s+` +
				`(?:(?:established|accepted|longstanding|traditional|settled)\s+)?` +
				`(?:practice|tradition|norms?|customs?|precedent)\s+` +
				`(?:would\s+be|is)\s+(?:unwise|dangerous|reckless|ill[- ]advised|inadvisable))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FALSE_EQUIVALENCE",
		Name: "False Equivalence",
		Description: "Presents two unequal positions, arguments, or evidence sets as roughly " +
			"equivalent to minimize a stronger position or elevate a weaker one. " +
			"Often disguised as 'balanced' analysis.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:(?:both|each|either)\s+side(?:s)?\s+(?:has|have|makes?|presents?)\s+` +
				`(?:valid|good|legitimate|strong|compelling|reasonable|fair)\s+` +
				`(?:points?|arguments?|claims?|cases?)|` +
				`(?:the\s+truth|reality|the\s+answer)\s+(?:is\s+|lies?\s+)?(?:somewhere\s+)?in\s+the\s+middle|` +
				`(?:there\s+are|we\s+(?:can\s+)?(?:see|find))\s+(?:valid\s+)?(?:arguments?|points?)\s+` +
				`on\s+(?:both|all|either)\s+sides?|` +
				`(?:it(?:'s|\s+is)|this\s+is)\s+(?:not\s+(?:as\s+)?(?:simple|clear[- ]cut|straightforward|` +
				`black\s+and\s+white)\s+as)\s+(?:(?:some|many|most)\s+(?:people|critics?|observers?)\s+)?(?:suggest|claim|argue|think|believe))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "MORAL_HIGH_GROUND",
		Name: "Moral Authority Claim",
		Description: "Claims moral superiority to shut down debate. Uses moral framing " +
			"to make disagreement appear not just wrong but morally deficient.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:(?:any|every|no)\s+(?:decent|moral|ethical|responsible|` +
				`right[- ]thinking|reasonable|thoughtful|caring)\s+` +
				`(?:person|human|individual|citizen|professional|leader|organization)\s+` +
				`(?:would|should|must|could|can)\s+(?:see|recognize|understand|agree|acknowledge|know)|` +
				`(?:it(?:'s|\s+is)|this\s+is)\s+(?:simply|just|purely|fundamentally)\s+` +
				`(?:a\s+matter\s+of|about|an?\s+(?:issue|question)\s+of)\s+` +
				`(?:basic\s+)?(?:human\s+)?(?:decency|morality|ethics|dignity|conscience)|` +
				`(?:moral(?:ly)?|ethic(?:al(?:ly)?)?)\s+(?:bankrupt|reprehensible|indefensible|` +
				`unconscionable|abhorrent|repugnant)\s+(?:to|for|that)|` +
				`(?:on\s+the\s+)?(?:right|wrong)\s+side\s+of\s+(?:morality|ethics|decency|justice|history))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "SOFT_CONSENSUS",
		Name: "Soft Consensus Manufacturing",
		Description: "Uses softer consensus language - 'the overwhelming majority', " +
			"'growing body of evidence', 'increasingly recognized' - to manufacture " +
			"the appearance of agreement without citing specific evidence or sources. " +
			"More subtle than explicit 'everyone agrees' but equally manipulative.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:the\s+)?(?:overwhelming|vast|great|clear|strong)\s+` +
				`(?:majority|bulk|preponderance)\s+of\s+` +
				`(?:\w+\s+){0,5}?` +
				`(?:agree|support|believe|recognize|acknowledge|accept|endorse|` +
				`favor|advocate|concur|confirm)\b`,
			`\b(?:growing|mounting|increasing|expanding|emerging)\s+` +
				`(?:body\s+of\s+)?(?:evidence|research|consensus|agreement|` +
				`recognition|support|literature)\s+` +
				`(?:suggests?|shows?|indicates?|supports?|points?\s+to|` +
				`confirms?|demonstrates?)\b`,
			`\b(?:increasingly|now\s+widely|now\s+broadly)\s+` +
				`(?:recognized|accepted|understood|acknowledged|adopted|embraced)\s+` +
				`(?:that|as|by|among|across|in)\b`,
		},
		MinMatches:      1,
		SuppressIfCited: true,
	},
	{
		ID:   "COMPETENCE_DISMISSAL",
		Name: "Competence-Based Dismissal",
		Description: "Dismisses opposing views by questioning the competence, understanding, " +
			"or expertise of those who disagree, rather than addressing their arguments. " +
			"Substitutes an attack on the critic's qualifications for engagement " +
			"with their position.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:those\s+who\s+|(?:people|anyone|critics?|opponents?)\s+(?:who\s+)?)` +
				`(?:oppose|disagree|object|resist|question|challenge|doubt|reject)` +
				`(?:\s+\w+){0,5}\s+` +
				`(?:(?:appear|seem)\s+to\s+)?` +
				`(?:misunderstand|fail\s+to\s+(?:grasp|understand|appreciate|comprehend))\b`,
			`\b(?:(?:simply|clearly|obviously|apparently)\s+)?` +
				`(?:don(?:'t|ot)|do\s+not|fail(?:s)?\s+to)\s+` +
				`(?:fully\s+)?(?:understand|grasp|appreciate|comprehend)\s+` +
				`(?:the\s+)?(?:\w+\s+)?(?:complexity|nuance|subtlet(?:y|ies)|intricac(?:y|ies)|` +
				`reality|scope|implications?|challenges?|requirements?)\b`,
			`\b(?:lack(?:s|ing)?|without)\s+(?:the\s+)?` +
				`(?:sufficient|adequate|necessary|proper|requisite|required|relevant)?\s*` +
				`(?:expertise|understanding|knowledge|background|training|` +
				`experience|qualifications?|competenc[ey])\s+` +
				`(?:to|in|of|for|about|regarding)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "VAGUE_INSTITUTIONAL_APPEAL",
		Name: "Vague Institutional Appeal",
		Description: "References unnamed 'leading organizations', 'top institutions', or " +
			"'responsible bodies' to create an impression of institutional backing " +
			"without identifying specific institutions that can be verified.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			// Allow up to 5 words between org noun and verb ("across the
			// financial services sector").
			`\b(?:leading|top|major|prominent|respected|responsible|` +
				`relevant|key|important|significant)\s+` +
				`(?:organizations?|institutions?|bodies|agencies|authorities|` +
				`groups?|stakeholders?|voices?|figures?)\s+` +
				`(?:(?:\w+\s+){0,5}?)?` +
				`(?:have\s+)?(?:agree|support|recognize|endorse|confirm|recommend|` +
				`advocate|call\s+for|emphasize|stress|urge|warn|advise|suggest)\b`,
			`\b(?:industry|sector|professional|regulatory|governing|oversight|` +
				`scientific|academic|medical|expert)\s+` +
				`(?:leaders?|bodies|authorities|groups?|organizations?|voices?|consensus)\s+` +
				`(?:have\s+)?(?:long\s+)?(?:recognized|accepted|emphasized|stressed|` +
				`warned|advocated|recommended|confirmed|supported|endorsed)\b`,
		},
		MinMatches:      1,
		SuppressIfCited: true,
	},
	{
		ID:   "ASPIRATIONAL_DEFLECTION",
		Name: "Aspirational Deflection",
		Description: "Uses aspirational language - 'we are committed to', 'our goal is to', " +
			"'we strive to' - as a substitute for evidence of actual achievement. " +
			"States intentions as if they were accomplishments, deflecting scrutiny " +
			"of actual outcomes.",
		PITTier:   1,
		Severity:  SeverityLow,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:our|the)\s+` +
				`(?:goal|mission|vision|commitment|pledge|promise|` +
				`priority|objective|aspiration)\s+` +
				`(?:is|remains|has\s+(?:always\s+)?been)\s+to\b`,
			`\bwe\s+(?:strive|aim|aspire|endeavor|seek|work)\s+to\s+` +
				`(?:ensure|build|create|foster|promote|advance|achieve|deliver|` +
				`provide|maintain|improve|uphold|protect|support)\b`,
			`\b(?:we|our\s+(?:team|organization|company|institution))\s+` +
				`(?:are\s+)?(?:deeply|fully|firmly|strongly|wholly)?\s*` +
				`(?:committed|dedicated|devoted)\s+to\b`,
		},
		// Single aspirational statement is normal; the pattern is accumulation.
		MinMatches: 2,
	},
	{
		ID:   "DISMISSAL_BY_REFRAMING",
		Name: "Dismissal by Reframing",
		Description: "Reframes or recharacterizes an opposing argument into something different " +
			"than what was actually argued, then addresses the reframed version. " +
			"More subtle than a straw man - presents the reframing as clarification " +
			"or 'what they really mean.'",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\bwhat\s+(?:they(?:'re|\s+are)|he(?:'s|\s+is)|she(?:'s|\s+is))\s+` +
				`(?:really|actually|essentially|fundamentally|truly)\s+` +
				`(?:saying|arguing|asking|suggesting|proposing|demanding|` +
				`claiming|getting\s+at)\b`,
			`\b(?:this|that|the\s+argument|their\s+(?:position|argument|claim))\s+` +
				`(?:is\s+)?(?:really|actually|essentially|fundamentally)\s+` +
				`(?:about|just|merely|nothing\s+more\s+than|` +
				`an?\s+(?:attempt|effort)\s+to)\b`,
			`\b(?:(?:stripped|boiled|reduced)|when\s+you\s+(?:strip|boil|reduce))\s+` +
				`(?:it\s+)?(?:down\s+)?(?:to\s+)?(?:its?\s+)?` +
				`(?:core|essence|basics?|fundamentals?)\b`,
		},
		MinMatches: 1,
	},
}
