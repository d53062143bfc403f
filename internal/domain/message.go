// File: internal/domain/message.go
package domain

// DomainInfo describes a domain for clients that render a domain picker.
type DomainInfo struct {
	Value       Domain `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var domainInfo = map[Domain]DomainInfo{
	DomainGeneral:  {Value: DomainGeneral, Label: "General", Description: "General purpose AI assistant"},
	DomainLegal:    {Value: DomainLegal, Label: "Legal", Description: "Legal information and guidance"},
	DomainDnD:      {Value: DomainDnD, Label: "D&D", Description: "Dungeons & Dragons expert"},
	DomainCooking:  {Value: DomainCooking, Label: "Cooking", Description: "Culinary arts and recipes"},
	DomainPersonal: {Value: DomainPersonal, Label: "Personal", Description: "Productivity and self-improvement"},
}

// Info returns the display metadata for d.
func (d Domain) Info() DomainInfo {
	if info, ok := domainInfo[d]; ok {
		return info
	}
	return domainInfo[DomainGeneral]
}

// AllDomainInfo returns display metadata for every domain in display order.
func AllDomainInfo() []DomainInfo {
	out := make([]DomainInfo, 0, len(Domains))
	for _, d := range Domains {
		out = append(out, d.Info())
	}
	return out
}
