// File: internal/domain/chat.go
package domain

import "strings"

// Domain is a topical mode that selects which system prompt is used.
type Domain string

const (
	DomainGeneral  Domain = "general"
	DomainLegal    Domain = "legal"
	DomainDnD      Domain = "dnd"
	DomainCooking  Domain = "cooking"
	DomainPersonal Domain = "personal"
)

// Domains lists every known domain in display order.
var Domains = []Domain{DomainGeneral, DomainLegal, DomainDnD, DomainCooking, DomainPersonal}

// ParseDomain matches s case-insensitively against the known domains.
// Unknown values fall back to DomainGeneral.
func ParseDomain(s string) Domain {
	switch d := Domain(strings.ToLower(strings.TrimSpace(s))); d {
	case DomainGeneral, DomainLegal, DomainDnD, DomainCooking, DomainPersonal:
		return d
	default:
		return DomainGeneral
	}
}

// ChatRequest is a single user message tagged with the caller's raw domain.
type ChatRequest struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	UserID  string `json:"user_id"`
}

// ModeTag renders the "[DOMAIN MODE]" prefix used by fallback replies.
// The caller's raw domain is uppercased as-is; an empty one reads as general.
func ModeTag(rawDomain string) string {
	if strings.TrimSpace(rawDomain) == "" {
		rawDomain = string(DomainGeneral)
	}
	return "[" + strings.ToUpper(rawDomain) + " MODE]"
}
