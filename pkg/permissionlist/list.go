package permissionlist

import (
	"context"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
)

// List renders a controller's session: header, one [Row] per permission and
// the footer, in a vertical scroll view. Mounting the list starts the
// controller; unmounting stops listening to it.
type List struct {
	core.StatefulBase

	Controller *Controller
	// OnClose, when set, shows a close action in the header.
	OnClose func()
}

// CreateState creates the list's state.
func (l List) CreateState() core.State {
	return &listState{}
}

type listState struct {
	core.StateBase
	controller *Controller
	rows       *core.Managed[[]RowState]
}

func (s *listState) InitState() {
	w, ok := s.currentWidget()
	if !ok || w.Controller == nil {
		return
	}
	c := w.Controller
	s.controller = c
	s.rows = core.NewManaged(s, c.Rows())

	// Row changes may arrive off the UI thread (initial load, foreground
	// refresh), so rebuilds always go through the dispatcher.
	unsubscribe := c.Subscribe(func(RowState) {
		update := func() {
			if s.IsDisposed() {
				return
			}
			s.rows.Set(c.Rows())
		}
		if !platform.Dispatch(update) {
			update()
		}
	})
	s.OnDispose(unsubscribe)

	go c.Start(context.Background())
}

func (s *listState) Build(ctx core.BuildContext) core.Widget {
	w, _ := s.currentWidget()
	c := s.controller
	if c == nil {
		return widgets.SizedBox{}
	}

	children := []core.Widget{
		Header{Texts: c.Texts(), OnClose: w.OnClose},
		widgets.VSpace(20),
	}
	for _, row := range s.rows.Value() {
		kind := row.Kind
		children = append(children,
			Row{
				State: row,
				Data:  c.DisplayData(kind),
				OnRequest: func() {
					c.RequestPermission(context.Background(), kind)
				},
			},
			widgets.VSpace(10),
		)
	}
	children = append(children, widgets.VSpace(6), Footer{Text: c.Texts().Footer})

	return widgets.ListView{
		Padding:  layout.EdgeInsetsAll(20),
		Physics:  widgets.BouncingScrollPhysics{},
		Children: children,
	}
}

func (s *listState) currentWidget() (List, bool) {
	if s.Element() == nil {
		return List{}, false
	}
	w, ok := s.Element().Widget().(List)
	return w, ok
}
