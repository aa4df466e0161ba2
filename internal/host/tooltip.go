package host

// TooltipSection names a secondary tooltip section that can be hidden
// independently of the whole tooltip.
type TooltipSection string

const (
	SectionAttributeModifiers TooltipSection = "attribute_modifiers"
	SectionModifiers          TooltipSection = "modifiers"
	SectionStoredModifiers    TooltipSection = "stored_modifiers"
	SectionIndestructible     TooltipSection = "indestructible"
)

// TooltipRule controls tooltip visibility for a stack. HideAll suppresses
// the entire tooltip; HiddenSections suppresses individual secondary lines.
type TooltipRule struct {
	HideAll        bool
	HiddenSections []TooltipSection
}
