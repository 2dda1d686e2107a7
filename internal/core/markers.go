package core

// Sense Knowledge markers. These are legacy keyword flags kept for quick
// detection: each marker found outside a citation context raises a low
// severity tier-1 marker flag. Matching is case-insensitive substring
// containment, one flag per marker regardless of repetition.
var senseKnowledgeMarkers = []string{
	"experts say",
	"studies show",
	"everyone agrees",
	"it's obvious that",
	"science has proven",
	"the consensus is",
	"most people think",
	"research indicates",
	"authorities confirm",
	"the data suggests",
	"conventional wisdom",
	"mainstream view",
	"widely accepted",
	"common knowledge",
	"it goes without saying",
	"undeniably",
	"unquestionably",
}
