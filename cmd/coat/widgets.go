package main

import (
	"github.com/vango-dev/coat/pkg/geom"
	"github.com/vango-dev/coat/pkg/tree"
	"github.com/vango-dev/coat/pkg/ui"
)

// click is the only event the demo delivers.
type click struct{}

// column groups its children. It has no layout of its own.
type column struct {
	tree.Base
	padding geom.Insets
}

func (c *column) Update(ctx *tree.UpdateCtx, padding geom.Insets) struct{} {
	if c.padding != padding {
		c.padding = padding
		ctx.SetPaintInsets(padding)
		ctx.RequestLayout()
	}
	return struct{}{}
}

var columnKind = ui.Kind[geom.Insets, struct{}, *column]{
	Create: func(p geom.Insets) *column { return &column{padding: p} },
}

// label shows a line of text.
type label struct {
	tree.Base
	text string
}

func (l *label) Update(ctx *tree.UpdateCtx, text string) struct{} {
	if !tree.PropsEqual(l.text, text) {
		l.text = text
		ctx.RequestLayout()
	}
	return struct{}{}
}

var labelKind = ui.Kind[string, struct{}, *label]{
	Create: func(text string) *label { return &label{text: text} },
}

// button reports whether it was clicked since the previous pass.
type button struct {
	tree.Base
	caption string
	pending bool
}

func (b *button) Event(ctx *tree.EventCtx, ev tree.Event, _ tree.Children) {
	if _, ok := ev.(click); ok {
		b.pending = true
		ctx.SetHandled()
		ctx.RequestUpdate()
	}
}

func (b *button) Update(ctx *tree.UpdateCtx, caption string) bool {
	if b.caption != caption {
		b.caption = caption
		ctx.RequestLayout()
	}
	clicked := b.pending
	b.pending = false
	return clicked
}

var buttonKind = ui.Kind[string, bool, *button]{
	Create: func(caption string) *button { return &button{caption: caption} },
}
