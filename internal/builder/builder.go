// Package builder compiles item definitions into fully-attributed host
// stacks. Every produced stack carries its identity and behaviour flags in
// its own metadata, so downstream consumers never need the definition store
// to answer policy questions.
package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharogames/itemforge/internal/host"
	"github.com/pharogames/itemforge/internal/item"
	"github.com/pharogames/itemforge/internal/logger"
	"github.com/pharogames/itemforge/internal/metrics"
	"github.com/pharogames/itemforge/internal/placeholder"
	"github.com/pharogames/itemforge/internal/profile"
	"github.com/pharogames/itemforge/internal/style"
)

// ErrUnknownBaseKind is the only fatal compile error: no stack is produced.
var ErrUnknownBaseKind = errors.New("unknown base kind")

// Builder turns definitions into host stacks. Both collaborators are
// optional: a nil placeholder resolver skips lore substitution, a nil
// profile provider skips owner visuals.
type Builder struct {
	profiles     profile.Provider
	placeholders placeholder.Resolver
}

// New creates a builder with the given optional collaborators.
func New(profiles profile.Provider, placeholders placeholder.Resolver) *Builder {
	return &Builder{profiles: profiles, placeholders: placeholders}
}

// Build compiles def into a stack. actor and opts may be nil. Apart from an
// unresolvable base kind, every attribute failure degrades that attribute
// only: the stack is still produced and always carries a complete identity
// and policy metadata block.
func (b *Builder) Build(ctx context.Context, def item.Definition, actor *host.Actor, opts *item.Overrides) (*host.Stack, error) {
	log := logger.FromContext(ctx).With("identity", def.Identity)

	kind, ok := host.LookupKind(def.BaseKind)
	if !ok {
		metrics.CompileFailures.WithLabelValues(metrics.ReasonUnknownBaseKind).Inc()
		return nil, fmt.Errorf("%w: %q for '%s'", ErrUnknownBaseKind, def.BaseKind, def.Identity)
	}

	stack := host.NewStack(kind)

	// Display name is rendered with italics forced off so custom names do
	// not inherit the host's default italic styling.
	if def.Display != "" {
		name := style.Render(def.Display)
		name.Italic = false
		stack.Name = &name
	}

	if len(def.LoreLines) > 0 {
		stack.Lore = b.renderLore(ctx, def, actor)
	}

	b.applyVisuals(ctx, def, stack)

	if def.GlintOverride != nil {
		glint := *def.GlintOverride
		stack.Glint = &glint
	}

	if def.RarityTier != "" {
		if rarity, ok := host.LookupRarity(def.RarityTier); ok {
			stack.Rarity = &rarity
		} else {
			log.Warn(LogMsgUnknownRarity, "rarity", def.RarityTier)
			metrics.CompileDegradations.WithLabelValues(metrics.ReasonUnknownRarity).Inc()
		}
	}

	if def.MaxStackSize != nil {
		size := *def.MaxStackSize
		stack.MaxStackSize = &size
	}

	if def.Indestructible {
		stack.Unbreakable = true
	}

	b.applyModifiers(ctx, def, stack)

	if def.HideAllInfo || def.HideSecondaryInfo {
		stack.Tooltip = buildTooltipRule(def)
	}

	if kind.IsPlayerLikeness() && opts != nil && opts.Owner != nil {
		b.applyOwnerProfile(ctx, def, stack, *opts.Owner)
	}

	// The metadata block is written last, unconditionally: whatever degraded
	// above, the stack leaves here with correct identity and policy.
	writePolicy(stack, def.Identity,
		opts.EffectiveLocked(def),
		opts.EffectiveDroppable(def),
		opts.EffectiveMovable(def))

	metrics.ItemsCompiled.WithLabelValues(def.Identity).Inc()
	return stack, nil
}

// renderLore substitutes placeholders (when an actor and a resolver are
// present) and style-renders each line. Substitution failures keep the
// original line; lore must never abort item creation.
func (b *Builder) renderLore(ctx context.Context, def item.Definition, actor *host.Actor) []host.Text {
	log := logger.FromContext(ctx).With("identity", def.Identity)

	lore := make([]host.Text, 0, len(def.LoreLines))
	for _, line := range def.LoreLines {
		resolved := line
		if actor != nil && b.placeholders != nil {
			out, err := b.placeholders.Apply(actor, line)
			if err != nil {
				log.Warn(LogMsgPlaceholderFailed, "error", err)
				metrics.CompileDegradations.WithLabelValues(metrics.ReasonPlaceholderError).Inc()
			} else {
				resolved = out
			}
		}
		lore = append(lore, style.Render(resolved))
	}
	return lore
}

func (b *Builder) applyVisuals(ctx context.Context, def item.Definition, stack *host.Stack) {
	if def.VisualModel == nil {
		return
	}
	log := logger.FromContext(ctx).With("identity", def.Identity)

	if def.VisualModel.PrimaryModel != "" {
		ref, err := host.ParseModelRef(def.VisualModel.PrimaryModel)
		if err != nil {
			log.Warn(LogMsgMalformedModelRef, "model", def.VisualModel.PrimaryModel, "error", err)
			metrics.CompileDegradations.WithLabelValues(metrics.ReasonMalformedVisual).Inc()
		} else {
			stack.Model = &ref
		}
	}

	if def.VisualModel.HasLegacyBlock() {
		data := &host.ModelData{
			Strings: append([]string(nil), def.VisualModel.Strings...),
			Floats:  append([]float32(nil), def.VisualModel.Floats...),
			Flags:   append([]bool(nil), def.VisualModel.Flags...),
		}
		for _, argb := range def.VisualModel.Colors {
			data.Colors = append(data.Colors, host.ColorFromARGB(argb))
		}
		stack.ModelData = data
	}
}

func (b *Builder) applyModifiers(ctx context.Context, def item.Definition, stack *host.Stack) {
	if len(def.Modifiers) == 0 {
		return
	}
	log := logger.FromContext(ctx).With("identity", def.Identity)

	stack.Modifiers = make(map[host.Modifier]int, len(def.Modifiers))
	for name, level := range def.Modifiers {
		mod, ok := host.LookupModifier(name)
		if !ok {
			log.Warn(LogMsgUnknownModifier, "modifier", name)
			metrics.CompileDegradations.WithLabelValues(metrics.ReasonUnknownModifier).Inc()
			continue
		}
		stack.Modifiers[mod] = level
	}
}

// applyOwnerProfile resolves the owner's visual profile. The fetch blocks
// the calling goroutine once, at creation time; it is never refreshed. On
// failure the stack keeps an incomplete profile rather than none.
func (b *Builder) applyOwnerProfile(ctx context.Context, def item.Definition, stack *host.Stack, owner profile.OwnerRef) {
	log := logger.FromContext(ctx).With("identity", def.Identity)

	if b.profiles == nil {
		log.Warn(LogMsgNoProfileProvider, "owner", owner.ID)
		return
	}

	prof, err := b.profiles.Resolve(ctx, owner)
	if err != nil {
		log.Warn(LogMsgProfileFetchFailed, "owner", owner.ID, "error", err)
		metrics.CompileDegradations.WithLabelValues(metrics.ReasonProfileFetch).Inc()
		prof = profile.Profile{ID: owner.ID, Name: owner.Name, Complete: false}
	}
	stack.OwnerProfile = &prof
}

// buildTooltipRule maps the two hide flags onto the host's tooltip rule.
// The secondary-section list is fixed, not user-configurable.
func buildTooltipRule(def item.Definition) *host.TooltipRule {
	rule := &host.TooltipRule{HideAll: def.HideAllInfo}
	if def.HideSecondaryInfo {
		rule.HiddenSections = []host.TooltipSection{
			host.SectionAttributeModifiers,
			host.SectionModifiers,
			host.SectionStoredModifiers,
			host.SectionIndestructible,
		}
	}
	return rule
}
