package permissionlist

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// Row renders one permission: icon, title, subtitle and the action button.
// It holds no state of its own; everything comes from State and Data.
type Row struct {
	core.StatelessBase

	State RowState
	Data  DisplayData
	// OnRequest is called when the action button is tapped.
	OnRequest func()
}

func (r Row) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	return widgets.Container{
		Color:        colors.SurfaceVariant,
		BorderRadius: 12,
		Padding:      layout.EdgeInsetsSymmetric(16, 12),
		Child: widgets.Row{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
			Children: []core.Widget{
				r.icon(colors),
				widgets.HSpace(14),
				widgets.Expanded{
					Child: widgets.Column{
						MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
						CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
						MainAxisSize:       widgets.MainAxisSizeMin,
						Children: []core.Widget{
							widgets.Text{Content: r.Data.Title, Style: graphics.TextStyle{
								Color:      colors.OnSurface,
								FontSize:   16,
								FontWeight: graphics.FontWeightSemibold,
							}},
							widgets.VSpace(2),
							widgets.Text{Content: r.Data.Subtitle, Style: textTheme.BodySmall, Wrap: true, MaxLines: 2},
						},
					},
				},
				widgets.HSpace(12),
				r.action(colors),
			},
		},
	}
}

func (r Row) icon(colors theme.ColorScheme) core.Widget {
	if r.Data.Icon != nil {
		return widgets.Image{
			Source:               r.Data.Icon,
			Width:                iconSize,
			Height:               iconSize,
			ExcludeFromSemantics: true,
		}
	}
	return widgets.SizedBox{
		Width:  iconSize,
		Height: iconSize,
		Child: widgets.Center{
			Child: widgets.Icon{Glyph: r.Data.IconGlyph, Size: 28, Color: colors.Primary},
		},
	}
}

func (r Row) action(colors theme.ColorScheme) core.Widget {
	bg, fg := colors.Primary, colors.OnPrimary
	disabled := false
	switch r.State.Visual {
	case RowAuthorized:
		bg, fg = colors.SecondaryContainer, colors.OnSecondaryContainer
		disabled = true
	case RowPending:
		disabled = true
	case RowDenied:
		bg, fg = colors.Error, colors.OnError
	}

	return widgets.Button{
		Label:        r.Data.ActionTitle(r.State.Visual),
		OnTap:        r.OnRequest,
		Disabled:     disabled,
		Color:        bg,
		TextColor:    fg,
		FontSize:     14,
		Padding:      layout.EdgeInsetsSymmetric(14, 8),
		BorderRadius: 16,
	}
}

// Header shows the list title and subtitle.
type Header struct {
	core.StatelessBase

	Texts Texts
	// OnClose, when set, adds a close action.
	OnClose func()
}

func (h Header) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)

	titles := widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentStart,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		MainAxisSize:       widgets.MainAxisSizeMin,
		Children: []core.Widget{
			widgets.Text{Content: h.Texts.Subtitle, Style: graphics.TextStyle{
				Color:      colors.OnSurfaceVariant,
				FontSize:   13,
				FontWeight: graphics.FontWeightSemibold,
			}},
			widgets.VSpace(4),
			widgets.Text{Content: h.Texts.Title, Style: textTheme.HeadlineSmall, Wrap: true},
		},
	}
	if h.OnClose == nil {
		return titles
	}

	return widgets.Row{
		MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
		MainAxisSize:       widgets.MainAxisSizeMax,
		Children: []core.Widget{
			widgets.Expanded{Child: titles},
			widgets.GestureDetector{
				OnTap: h.OnClose,
				Child: widgets.PaddingAll(4, widgets.Icon{Glyph: "✕", Size: 20, Color: colors.OnSurfaceVariant}),
			},
		},
	}
}

// Footer shows the comment below the rows.
type Footer struct {
	core.StatelessBase

	Text string
}

func (f Footer) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	return widgets.Text{
		Content: f.Text,
		Style:   graphics.TextStyle{Color: colors.OnSurfaceVariant, FontSize: 13},
		Wrap:    true,
	}
}
