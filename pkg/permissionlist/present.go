package permissionlist

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/overlay"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// Sheet size of a presented list, in logical pixels.
const (
	SheetWidth  = 480
	SheetHeight = 560
)

// Present shows c as a modal sheet above the nearest overlay. The sheet
// closes when the controller is dismissed, by the user, by the close action
// or after every permission is granted. The returned function dismisses the
// controller.
//
// Tapping the barrier does not close the sheet, so a dismissal always goes
// through the controller.
func Present(ctx core.BuildContext, c *Controller) (dismiss func()) {
	th := theme.ThemeOf(ctx)
	removeSheet := overlay.ShowDialog(ctx, overlay.DialogOptions{
		Persistent:   true,
		BarrierColor: th.ColorScheme.Scrim.WithAlpha(0.4),
		Builder: func(ctx core.BuildContext, _ func()) core.Widget {
			_, colors, _ := theme.UseTheme(ctx)
			return widgets.Container{
				Width:        SheetWidth,
				Height:       SheetHeight,
				Color:        colors.Surface,
				BorderRadius: 16,
				Child: List{
					Controller: c,
					OnClose:    c.Dismiss,
				},
			}
		},
	})
	c.addDismissHandler(removeSheet)
	return c.Dismiss
}
