package components

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// IconSource identifies which icon the render decision selected.
type IconSource int

const (
	// IconNone means no icon slot is rendered.
	IconNone IconSource = iota
	// IconCustom is the caller-supplied icon.
	IconCustom
	// IconLoadingCustom is the loading specification's own indicator.
	IconLoadingCustom
	// IconSpinner is the default loading spinner.
	IconSpinner
)

// RenderTarget is the tagged output element kind: a link or a plain action.
type RenderTarget interface {
	renderTarget()
}

// LinkTarget renders the button with link semantics. A disabled link stays
// in the tree but withholds its href, leaves the focus order and carries the
// accessibility-disabled attribute.
type LinkTarget struct {
	Href         string
	Focusable    bool
	AriaDisabled bool
}

func (LinkTarget) renderTarget() {}

// ActionTarget renders the button with action semantics, passing the
// disabled flag through natively.
type ActionTarget struct {
	Disabled bool
}

func (ActionTarget) renderTarget() {}

// LoadingView is the loading automaton's externally visible state for one
// update cycle.
type LoadingView struct {
	Active       bool
	Spec         Loading
	InitialMount bool
}

// RenderDecision is the per-cycle output of the decision engine: which icon
// to show, how to treat the label, which element kind to produce, and
// whether to wrap the output with press feedback. It is ephemeral and
// recomputed every cycle.
type RenderDecision struct {
	Source       IconSource
	Icon         Icon
	ReplacedIcon bool
	InitialMount bool

	InsertTextSpace bool
	IconOnly        bool

	Target RenderTarget

	WrapFeedback  bool
	FeedbackMuted bool
}

// Decide computes the render decision for a resolved configuration. It is
// pure with respect to its inputs; the returned value is discarded after the
// cycle.
func Decide(resolved Resolved, loading LoadingView, props Props, ambient Ambient, children []any) RenderDecision {
	decision := RenderDecision{InitialMount: loading.InitialMount}

	switch {
	case props.Icon != nil && !loading.Active:
		decision.Source = IconCustom
		decision.Icon = props.Icon
	case loading.Active && loading.Spec.Icon() != nil:
		decision.Source = IconLoadingCustom
		decision.Icon = loading.Spec.Icon()
	case loading.Active:
		decision.Source = IconSpinner
		decision.ReplacedIcon = props.Icon != nil
	}

	decision.InsertTextSpace = len(children) == 1 &&
		props.Icon == nil &&
		!resolved.Variant.Unbordered() &&
		ambient.autoInsertSpace(props.AutoInsertSpace) &&
		isTwoIdeographs(childText(children[0]))

	decision.IconOnly = len(children) == 0 && decision.Source != IconNone

	if props.Href != "" {
		link := LinkTarget{Href: props.Href, Focusable: true}
		if resolved.Disabled {
			link.Href = ""
			link.Focusable = false
			link.AriaDisabled = true
		}
		decision.Target = link
	} else {
		decision.Target = ActionTarget{Disabled: resolved.Disabled}
	}

	decision.WrapFeedback = !resolved.Variant.Unbordered()
	decision.FeedbackMuted = loading.Active

	return decision
}

// childText extracts the renderable text of a child value. Nil children are
// absent; everything else, including a numeric zero, counts as present.
func childText(child any) string {
	switch v := child.(type) {
	case nil:
		return ""
	case string:
		return v
	case Renderable:
		return v.View()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// isTwoIdeographs reports whether s consists of exactly two CJK ideographs.
func isTwoIdeographs(s string) bool {
	if utf8.RuneCountInString(s) != 2 {
		return false
	}
	for _, r := range s {
		if !unicode.Is(unicode.Han, r) {
			return false
		}
	}
	return true
}

// normalizeChildren drops absent (nil) entries while keeping every other
// value, so a literal zero still counts as content.
func normalizeChildren(children []any) []any {
	kept := make([]any, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		kept = append(kept, child)
	}
	return kept
}
