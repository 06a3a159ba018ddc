package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideIconPriority(t *testing.T) {
	custom := GlyphIcon("→")
	loadingIcon := GlyphIcon("⟳")

	t.Run("custom icon while not loading", func(t *testing.T) {
		props := Props{Icon: custom}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		assert.Equal(t, IconCustom, decision.Source)
		assert.Equal(t, custom, decision.Icon)
	})

	t.Run("loading spec icon wins while loading", func(t *testing.T) {
		props := Props{Icon: custom}
		view := LoadingView{Active: true, Spec: LoadingAfter(0, loadingIcon)}
		decision := Decide(Resolve(props, Ambient{}), view, props, Ambient{}, nil)
		assert.Equal(t, IconLoadingCustom, decision.Source)
		assert.Equal(t, loadingIcon, decision.Icon)
	})

	t.Run("spinner fallback remembers replaced icon", func(t *testing.T) {
		props := Props{Icon: custom}
		view := LoadingView{Active: true, Spec: LoadingOn(), InitialMount: true}
		decision := Decide(Resolve(props, Ambient{}), view, props, Ambient{}, nil)
		assert.Equal(t, IconSpinner, decision.Source)
		assert.True(t, decision.ReplacedIcon)
		assert.True(t, decision.InitialMount)
	})

	t.Run("no icon at rest", func(t *testing.T) {
		decision := Decide(Resolve(Props{}, Ambient{}), LoadingView{}, Props{}, Ambient{}, []any{"Go"})
		assert.Equal(t, IconNone, decision.Source)
	})
}

func TestDecideIconOnly(t *testing.T) {
	props := Props{Icon: GlyphIcon("+")}
	resolved := Resolve(props, Ambient{})

	t.Run("true without children", func(t *testing.T) {
		decision := Decide(resolved, LoadingView{}, props, Ambient{}, nil)
		assert.True(t, decision.IconOnly)
	})

	t.Run("false with numeric zero child", func(t *testing.T) {
		decision := Decide(resolved, LoadingView{}, props, Ambient{}, []any{0})
		assert.False(t, decision.IconOnly, "a rendered zero counts as content")
	})

	t.Run("false without any icon", func(t *testing.T) {
		decision := Decide(Resolve(Props{}, Ambient{}), LoadingView{}, Props{}, Ambient{}, nil)
		assert.False(t, decision.IconOnly)
	})

	t.Run("true with loading spinner and no children", func(t *testing.T) {
		view := LoadingView{Active: true, Spec: LoadingOn()}
		decision := Decide(Resolve(Props{}, Ambient{}), view, Props{}, Ambient{}, nil)
		assert.True(t, decision.IconOnly)
	})
}

func TestDecideInsertTextSpace(t *testing.T) {
	base := Props{Variant: VariantOutlined, Color: ColorDefault}

	t.Run("two ideographs qualify", func(t *testing.T) {
		decision := Decide(Resolve(base, Ambient{}), LoadingView{}, base, Ambient{}, []any{"按钮"})
		assert.True(t, decision.InsertTextSpace)
	})

	t.Run("latin text does not", func(t *testing.T) {
		decision := Decide(Resolve(base, Ambient{}), LoadingView{}, base, Ambient{}, []any{"OK"})
		assert.False(t, decision.InsertTextSpace)
	})

	t.Run("three ideographs do not", func(t *testing.T) {
		decision := Decide(Resolve(base, Ambient{}), LoadingView{}, base, Ambient{}, []any{"按钮组"})
		assert.False(t, decision.InsertTextSpace)
	})

	t.Run("icon presence disables it", func(t *testing.T) {
		props := base
		props.Icon = GlyphIcon("→")
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, []any{"按钮"})
		assert.False(t, decision.InsertTextSpace)
	})

	t.Run("unbordered variants opt out", func(t *testing.T) {
		props := Props{Color: ColorDefault, Variant: VariantText}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, []any{"按钮"})
		assert.False(t, decision.InsertTextSpace)
	})

	t.Run("ambient opt-out respected", func(t *testing.T) {
		ambient := Ambient{AutoInsertSpace: boolPtr(false)}
		decision := Decide(Resolve(base, ambient), LoadingView{}, base, ambient, []any{"按钮"})
		assert.False(t, decision.InsertTextSpace)
	})

	t.Run("explicit setting beats ambient", func(t *testing.T) {
		props := base
		props.AutoInsertSpace = boolPtr(true)
		ambient := Ambient{AutoInsertSpace: boolPtr(false)}
		decision := Decide(Resolve(props, ambient), LoadingView{}, props, ambient, []any{"按钮"})
		assert.True(t, decision.InsertTextSpace)
	})
}

func TestDecideTargetSelection(t *testing.T) {
	t.Run("action by default", func(t *testing.T) {
		decision := Decide(Resolve(Props{}, Ambient{}), LoadingView{}, Props{}, Ambient{}, nil)
		target, ok := decision.Target.(ActionTarget)
		require.True(t, ok)
		assert.False(t, target.Disabled)
	})

	t.Run("disabled action passes the flag through", func(t *testing.T) {
		props := Props{Disabled: boolPtr(true)}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		target, ok := decision.Target.(ActionTarget)
		require.True(t, ok)
		assert.True(t, target.Disabled)
	})

	t.Run("href selects link", func(t *testing.T) {
		props := Props{Href: "/docs"}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		target, ok := decision.Target.(LinkTarget)
		require.True(t, ok)
		assert.Equal(t, "/docs", target.Href)
		assert.True(t, target.Focusable)
		assert.False(t, target.AriaDisabled)
	})

	t.Run("disabled link withholds navigation", func(t *testing.T) {
		props := Props{Href: "/x", Disabled: boolPtr(true)}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		target, ok := decision.Target.(LinkTarget)
		require.True(t, ok)
		assert.Empty(t, target.Href, "target must be withheld")
		assert.False(t, target.Focusable, "focus order must be removed")
		assert.True(t, target.AriaDisabled)
	})
}

func TestDecideFeedbackWrap(t *testing.T) {
	t.Run("bordered variants wrap", func(t *testing.T) {
		props := Props{Type: TypePrimary}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		assert.True(t, decision.WrapFeedback)
		assert.False(t, decision.FeedbackMuted)
	})

	t.Run("unbordered variants do not", func(t *testing.T) {
		props := Props{Type: TypeLink}
		decision := Decide(Resolve(props, Ambient{}), LoadingView{}, props, Ambient{}, nil)
		assert.False(t, decision.WrapFeedback)
	})

	t.Run("muted while loading", func(t *testing.T) {
		props := Props{Type: TypePrimary}
		view := LoadingView{Active: true, Spec: LoadingOn()}
		decision := Decide(Resolve(props, Ambient{}), view, props, Ambient{}, nil)
		assert.True(t, decision.WrapFeedback)
		assert.True(t, decision.FeedbackMuted)
	})
}

func TestIsTwoIdeographs(t *testing.T) {
	assert.True(t, isTwoIdeographs("提交"))
	assert.False(t, isTwoIdeographs("ab"))
	assert.False(t, isTwoIdeographs("提"))
	assert.False(t, isTwoIdeographs("提交中"))
	assert.False(t, isTwoIdeographs("提a"))
	assert.False(t, isTwoIdeographs(""))
}

func TestNormalizeChildren(t *testing.T) {
	kept := normalizeChildren([]any{nil, "a", 0, nil})
	assert.Equal(t, []any{"a", 0}, kept)
}

func TestChildText(t *testing.T) {
	assert.Equal(t, "label", childText("label"))
	assert.Equal(t, "0", childText(0))
	assert.Equal(t, "", childText(nil))
}
