// File: internal/services/chat/prompts.go
package chat

import "github.com/iyunix/go-mindmesh/internal/domain"

var domainPrompts = map[domain.Domain]string{
	domain.DomainGeneral:  "You are a helpful AI assistant. Provide clear, accurate, and helpful responses.",
	domain.DomainLegal:    "You are a legal AI assistant providing general legal information. Always remind users to consult with qualified legal professionals for specific legal advice.",
	domain.DomainDnD:      "You are a D&D expert assistant helping with game mechanics, rules, lore, and character creation. Be creative and engaging while staying accurate to D&D 5e rules.",
	domain.DomainCooking:  "You are a culinary expert assistant helping with recipes, cooking techniques, ingredient substitutions, and food preparation tips.",
	domain.DomainPersonal: "You are a personal assistant focused on productivity, self-improvement, goal setting, and life organization. Provide practical and actionable advice.",
}

// PromptFor returns the system prompt for d, or the general prompt for
// values outside the known set.
func PromptFor(d domain.Domain) string {
	if p, ok := domainPrompts[d]; ok {
		return p
	}
	return domainPrompts[domain.DomainGeneral]
}

// DomainPrompt resolves a caller-supplied domain string to its system prompt.
func DomainPrompt(raw string) string {
	return PromptFor(domain.ParseDomain(raw))
}

func unavailableReply(rawDomain string) string {
	return domain.ModeTag(rawDomain) + " AI service temporarily unavailable. Please check back soon!"
}

func technicalDifficultiesReply(rawDomain string) string {
	return domain.ModeTag(rawDomain) + " I'm experiencing technical difficulties. Please try again in a moment."
}

// SystemUnavailableReply is the reply used when request handling itself fails.
func SystemUnavailableReply(rawDomain string) string {
	return domain.ModeTag(rawDomain) + " System temporarily unavailable. Please try again."
}
