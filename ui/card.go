package ui

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CardStyle is the look shared by every overlay card.
type CardStyle struct {
	TitleFace   text.Face
	BodyFace    text.Face
	Padding     float64
	MaxWidth    float64
	LineSpacing float64
	Background  color.RGBA
	Hover       color.RGBA
	TextColor   color.RGBA
	LinkColor   color.RGBA
}

// TextCard is a panel of text pinned into the world by the overlay layer.
// It is laid out lazily on its first Draw, so until then Size reports (0, 0).
type TextCard struct {
	Title string
	Body  string
	Link  string

	// OnActivate is called with Link when the card is clicked.
	OnActivate func(link string)

	style   CardStyle
	lines   []string
	width   int
	height  int
	laidOut bool
	hovered bool
}

func NewTextCard(title, body, link string, style CardStyle) *TextCard {
	return &TextCard{
		Title: title,
		Body:  body,
		Link:  link,
		style: style,
	}
}

// Size is the laid-out size in pixels.
func (c *TextCard) Size() (int, int) {
	return c.width, c.height
}

func (c *TextCard) LaidOut() bool { return c.laidOut }

func (c *TextCard) SetHovered(hovered bool) { c.hovered = hovered }

// Activate fires OnActivate for cards that carry a link.
func (c *TextCard) Activate() {
	if c.Link == "" || c.OnActivate == nil {
		return
	}
	c.OnActivate(c.Link)
}

// Layout wraps the body to the style's max width and sizes the card.
func (c *TextCard) Layout() {
	s := c.style
	inner := s.MaxWidth - 2*s.Padding
	measureBody := func(str string) float64 {
		w, _ := text.Measure(str, s.BodyFace, 0)
		return w
	}
	c.lines = wrapWords(c.Body, inner, measureBody)

	titleW, titleH := text.Measure(c.Title, s.TitleFace, 0)
	widest := titleW
	for _, line := range c.lines {
		widest = math.Max(widest, measureBody(line))
	}
	lineH := lineHeight(s.BodyFace, s.LineSpacing)
	h := titleH + float64(len(c.lines))*lineH
	if c.Link != "" {
		h += lineH
	}

	c.width = int(math.Ceil(widest + 2*s.Padding))
	c.height = int(math.Ceil(h + 2*s.Padding))
	c.laidOut = true
}

// Draw renders the card with its top-left corner at (left, top).
func (c *TextCard) Draw(screen *ebiten.Image, left, top float64) {
	if !c.laidOut {
		c.Layout()
	}
	s := c.style

	bg := s.Background
	if c.hovered && c.Link != "" {
		bg = s.Hover
	}
	vector.FillRect(screen, float32(left), float32(top), float32(c.width), float32(c.height), bg, false)

	x := left + s.Padding
	y := top + s.Padding

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.TextColor)
	text.Draw(screen, c.Title, s.TitleFace, op)
	_, titleH := text.Measure(c.Title, s.TitleFace, 0)
	y += titleH

	lineH := lineHeight(s.BodyFace, s.LineSpacing)
	for _, line := range c.lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(s.TextColor)
		text.Draw(screen, line, s.BodyFace, op)
		y += lineH
	}

	if c.Link != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(s.LinkColor)
		text.Draw(screen, "> "+c.Link, s.BodyFace, op)
	}
}

func lineHeight(face text.Face, spacing float64) float64 {
	m := face.Metrics()
	h := m.HAscent + m.HDescent
	if spacing > 0 {
		h *= spacing
	}
	return h
}

// wrapWords greedily packs words into lines no wider than maxWidth. A single
// word wider than maxWidth gets a line of its own.
func wrapWords(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
