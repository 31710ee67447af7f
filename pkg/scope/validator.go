// Package scope classifies outbound user queries before they reach the AI
// backend: in-scope queries pass through, everything else gets a canned
// redirect so the assistant never wanders off the supported equipment.
package scope

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reason codes for rejected queries.
type Reason string

const (
	ReasonTooShort         Reason = "too short"
	ReasonCompetitor       Reason = "competitor system"
	ReasonOffTopic         Reason = "off-topic"
	ReasonGeneralKnowledge Reason = "general knowledge query"
)

// Result is the outcome of classifying one query. SuggestedResponse is the
// canned reply to show instead of calling the backend.
type Result struct {
	IsValid           bool   `json:"isValid"`
	Reason            Reason `json:"reason,omitempty"`
	SuggestedResponse string `json:"suggestedResponse,omitempty"`
}

// Keywords that indicate the query is within our service domain.
var validDomainKeywords = []string{
	// Equipment brands we support
	"control4", "lutron", "qolsys", "alarm.com", "araknis", "ubiquiti", "luma",
	"lg", "sony", "anthem", "unifi", "dream machine",

	// General categories we support
	"automation", "smart home", "lighting", "shades", "blinds", "security", "alarm",
	"camera", "surveillance", "network", "wifi", "internet", "router", "switch",
	"av", "audio", "video", "tv", "television", "speaker", "receiver", "amp", "amplifier",
	"remote", "streaming", "hdmi", "projector", "screen", "soundbar",

	// Common issues/actions
	"install", "setup", "configure", "troubleshoot", "connect", "reset", "reboot",
	"offline", "not working", "connection", "pairing", "password", "app",

	// Our company
	"soundvision", "sound vision", "service", "support", "help", "technician",
}

// Competitor systems get their own graceful redirect.
var competitorKeywords = []string{"savant", "crestron", "elan"}

// Keywords that clearly indicate off-topic queries. "capital of" is left to
// the general-question step below so that classification names the right
// reason; everything else here wins before that step runs.
var offTopicKeywords = []string{
	"recipe", "cooking", "weather", "sports", "politics", "news",
	"medical", "health", "legal", "financial", "stock", "investment",
	"dating", "relationship", "homework", "essay", "poetry",
	"game", "gaming", "xbox", "playstation",

	"history of", "who is", "who was", "biography", "famous",
	"population of", "define", "meaning of", "translate", "translation",
}

// Sentence openings that suggest a general-knowledge question.
var generalQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(what|how|when|where|why|who|which)`),
	regexp.MustCompile(`tell me about`),
	regexp.MustCompile(`explain`),
	regexp.MustCompile(`can you help me (with|learn|understand)`),
	regexp.MustCompile(`(write|create|make) (a|an|me)`),
}

// Generic technical wording that earns an ambiguous query the benefit of
// the doubt.
var technicalTerms = []string{
	"device", "system", "equipment", "problem", "issue", "error",
	"set up", "install", "configure", "connect", "disconnect",
}

// Canned responses.
const (
	greetingResponse = "I'm here to help with your SoundVision equipment and home automation systems. How can I assist you today?"

	competitorResponse = "I specialize in SoundVision's equipment including Control4, Lutron, Qolsys, Araknis, Ubiquiti, and Luma systems. For questions about other brands, I'd recommend reaching out to that manufacturer's support team."

	offTopicResponse = "I'm specifically designed to help with your SoundVision home automation, security, networking, and AV equipment. Is there something I can help you troubleshoot with your home systems?"

	generalKnowledgeResponse = "I'm your SoundVision equipment expert, specializing in home automation, security, networking, and AV systems. I'm here to help troubleshoot your Control4, Lutron, Qolsys, Luma, or other installed equipment. What can I help you with?"

	defaultRedirectResponse = "I'm designed to help specifically with SoundVision's home automation, security, networking, and AV equipment. This includes troubleshooting Control4 automation, Lutron lighting and shades, Qolsys security systems, Araknis/Ubiquiti networking, Luma cameras, and premium AV equipment. How can I assist you with your installed systems?"
)

// Validate classifies a user query. It is deterministic, makes no external
// calls, and is intentionally biased toward letting borderline input
// through to the backend rather than over-blocking.
//
// Matching is case-insensitive substring containment, not whole-word
// matching. That trades precision for simplicity and can false-positive on
// keywords embedded in longer words; see DESIGN.md.
func Validate(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))

	if utf8.RuneCountInString(q) < 3 {
		return Result{
			Reason:            ReasonTooShort,
			SuggestedResponse: greetingResponse,
		}
	}

	if containsAny(q, competitorKeywords) {
		return Result{
			Reason:            ReasonCompetitor,
			SuggestedResponse: competitorResponse,
		}
	}

	if containsAny(q, offTopicKeywords) {
		return Result{
			Reason:            ReasonOffTopic,
			SuggestedResponse: offTopicResponse,
		}
	}

	if containsAny(q, validDomainKeywords) {
		return Result{IsValid: true}
	}

	// A question-shaped query with no technical context reads as general
	// knowledge and is redirected without spending a backend call.
	if seemsLikeGeneralQuestion(q) && !containsAny(q, technicalTerms) {
		return Result{
			Reason:            ReasonGeneralKnowledge,
			SuggestedResponse: generalKnowledgeResponse,
		}
	}

	// Permissive fallback for everything ambiguous ("help", "problem", ...).
	return Result{IsValid: true}
}

// OutOfScopeMessage returns the canned reply for a query, falling back to
// the generic redirect when the classification produced none.
func OutOfScopeMessage(query string) string {
	if r := Validate(query); r.SuggestedResponse != "" {
		return r.SuggestedResponse
	}
	return defaultRedirectResponse
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

func seemsLikeGeneralQuestion(q string) bool {
	for _, p := range generalQuestionPatterns {
		if p.MatchString(q) {
			return true
		}
	}
	return false
}
