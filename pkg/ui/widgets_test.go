package ui

import (
	"github.com/vango-dev/coat/pkg/geom"
	"github.com/vango-dev/coat/pkg/tree"
)

// label records every props value it is updated with.
type label struct {
	tree.Base
	text     string
	updates  []string
	disposed bool
}

func (l *label) Update(ctx *tree.UpdateCtx, text string) struct{} {
	l.updates = append(l.updates, text)
	if !tree.PropsEqual(l.text, text) {
		l.text = text
		ctx.RequestLayout()
	}
	return struct{}{}
}

func (l *label) Dispose() {
	l.disposed = true
}

var labelKind = Kind[string, struct{}, *label]{
	Create: func(text string) *label { return &label{text: text} },
}

// button reports clicks that arrived through Event since the last update.
type button struct {
	tree.Base
	caption string
	clicks  int
}

type click struct{}

func (b *button) Event(ctx *tree.EventCtx, ev tree.Event, _ tree.Children) {
	if _, ok := ev.(click); ok {
		b.clicks++
		ctx.SetHandled()
		ctx.RequestUpdate()
	}
}

func (b *button) Update(_ *tree.UpdateCtx, caption string) bool {
	b.caption = caption
	clicked := b.clicks > 0
	b.clicks = 0
	return clicked
}

var buttonKind = Kind[string, bool, *button]{
	Create: func(caption string) *button { return &button{caption: caption} },
}

// box is a container with padding props.
type box struct {
	tree.Base
	pad geom.Insets
}

func (b *box) Update(ctx *tree.UpdateCtx, pad geom.Insets) struct{} {
	if b.pad != pad {
		b.pad = pad
		ctx.SetPaintInsets(pad)
		ctx.RequestLayout()
	}
	return struct{}{}
}

var boxKind = Kind[geom.Insets, struct{}, *box]{
	Create: func(pad geom.Insets) *box { return &box{pad: pad} },
}

// tracked is a state value that records disposal.
type tracked struct {
	value    int
	disposed *int
}

func (t *tracked) Dispose() {
	*t.disposed++
}
