// Package sidebarmd reads sidebar sections from a Markdown outline file.
//
// The outline format:
//
//	# Anything (level-1 headings are ignored)
//
//	## 📚 Guias
//
//	- [Overview](/guides/)
//	- Backend
//	  - [vsmenu-api](/guides/api/)
//
//	## 📋 ADRs {collapsed}
//
//	- [Architecture Decisions](/architecture/decisions/)
//
// Each heading of level two or deeper starts a section. A trailing {collapsed} or {open}
// marker makes the section collapsible with that initial state. List items become
// navigation items; nested lists become their children. An item without a link is a
// group heading.
package sidebarmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

const (
	markerCollapsed = "{collapsed}"
	markerOpen      = "{open}"
)

// Parse converts a Markdown outline into sidebar sections. Structural problems (a list
// before the first section heading) are reported with their line number.
func Parse(src []byte) ([]nav.Section, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var sections []nav.Section
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Heading:
			if node.Level == 1 {
				continue
			}
			sections = append(sections, headingSection(node, src))
		case *gmast.List:
			if len(sections) == 0 {
				return nil, fmt.Errorf("line %d: list appears before the first section heading", lineOf(node, src))
			}
			cur := &sections[len(sections)-1]
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				cur.Items = append(cur.Items, listItem(li, src))
			}
		}
	}
	return sections, nil
}

func headingSection(h *gmast.Heading, src []byte) nav.Section {
	title := strings.TrimSpace(plainText(h, src))
	sec := nav.Section{Text: title}
	switch {
	case strings.HasSuffix(title, markerCollapsed):
		b := true
		sec.Collapsed = &b
		sec.Text = strings.TrimSpace(strings.TrimSuffix(title, markerCollapsed))
	case strings.HasSuffix(title, markerOpen):
		b := false
		sec.Collapsed = &b
		sec.Text = strings.TrimSpace(strings.TrimSuffix(title, markerOpen))
	}
	return sec
}

func listItem(li gmast.Node, src []byte) *nav.Item {
	it := &nav.Item{}
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *gmast.List:
			for sub := n.FirstChild(); sub != nil; sub = sub.NextSibling() {
				it.Children = append(it.Children, listItem(sub, src))
			}
		default:
			if it.Text != "" {
				continue
			}
			if link := firstLink(n); link != nil {
				it.Text = strings.TrimSpace(plainText(link, src))
				it.Link = string(link.Destination)
			} else {
				it.Text = strings.TrimSpace(plainText(n, src))
			}
		}
	}
	return it
}

func firstLink(n gmast.Node) *gmast.Link {
	var found *gmast.Link
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if l, ok := c.(*gmast.Link); ok {
			found = l
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return found
}

// plainText concatenates the inline text below n.
func plainText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}

func lineOf(n gmast.Node, src []byte) int {
	for c := n; c != nil; c = c.FirstChild() {
		if c.Type() == gmast.TypeBlock && c.Lines().Len() > 0 {
			return bytes.Count(src[:c.Lines().At(0).Start], []byte("\n")) + 1
		}
	}
	return 0
}
