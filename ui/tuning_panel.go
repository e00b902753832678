package ui

import (
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Readout is the camera state shown on the tuning panel.
type Readout struct {
	Axis     float64
	Target   float64
	Velocity float64
	Min, Max float64
	Policy   string
	Blur     bool
	Items    int
	Input    string
	Window   string
}

// TuningPanel holds the ebitenui interface for live camera tuning
type TuningPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnTogglePolicy func()
	OnToggleBlur   func()
	OnReset        func()
	OnCycleWindow  func()

	// Widget references for updates
	content       *widget.Container
	axisLabel     *widget.Label
	targetLabel   *widget.Label
	velocityLabel *widget.Label
	boundsLabel   *widget.Label
	itemsLabel    *widget.Label
	policyButton  *widget.Button
	blurButton    *widget.Button
	windowButton  *widget.Button

	titleFace text.Face
	smallFace text.Face

	background color.RGBA
	textColor  color.RGBA
	margin     int
}

// NewTuningPanel builds the panel anchored to the top-right corner.
func NewTuningPanel(titleFace, smallFace text.Face, background, textColor color.RGBA, margin int,
	onTogglePolicy, onToggleBlur, onReset, onCycleWindow func()) *TuningPanel {
	tp := &TuningPanel{
		OnTogglePolicy: onTogglePolicy,
		OnToggleBlur:   onToggleBlur,
		OnReset:        onReset,
		OnCycleWindow:  onCycleWindow,
		titleFace:      titleFace,
		smallFace:      smallFace,
		background:     background,
		textColor:      textColor,
		margin:         margin,
	}
	tp.buildUI()
	return tp
}

func (tp *TuningPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(tp.margin)),
		)),
	)

	tp.content = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(tp.background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	tp.content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CAMERA", &tp.titleFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	tp.axisLabel = tp.newReadoutLabel()
	tp.targetLabel = tp.newReadoutLabel()
	tp.velocityLabel = tp.newReadoutLabel()
	tp.boundsLabel = tp.newReadoutLabel()
	tp.itemsLabel = tp.newReadoutLabel()

	tp.policyButton = tp.newButton("clamp: soft", func() {
		if tp.OnTogglePolicy != nil {
			tp.OnTogglePolicy()
		}
	})
	tp.blurButton = tp.newButton("blur: on", func() {
		if tp.OnToggleBlur != nil {
			tp.OnToggleBlur()
		}
	})
	tp.windowButton = tp.newButton("window", func() {
		if tp.OnCycleWindow != nil {
			tp.OnCycleWindow()
		}
	})
	tp.content.AddChild(tp.policyButton)
	tp.content.AddChild(tp.blurButton)
	tp.content.AddChild(tp.windowButton)
	tp.content.AddChild(tp.newButton("reset camera", func() {
		if tp.OnReset != nil {
			tp.OnReset()
		}
	}))

	rootContainer.AddChild(tp.content)

	tp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tp *TuningPanel) newReadoutLabel() *widget.Label {
	label := widget.NewLabel(
		widget.LabelOpts.Text("", &tp.smallFace, &widget.LabelColor{
			Idle: tp.textColor,
		}),
	)
	tp.content.AddChild(label)
	return label
}

func (tp *TuningPanel) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 20),
		),
		widget.ButtonOpts.Image(tp.buttonImage()),
		widget.ButtonOpts.Text(label, &tp.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tp *TuningPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Refresh copies the readout into the labels.
func (tp *TuningPanel) Refresh(r Readout) {
	tp.axisLabel.Label = fmt.Sprintf("axis     %8.3f", r.Axis)
	tp.targetLabel.Label = fmt.Sprintf("target   %8.3f", r.Target)
	tp.velocityLabel.Label = fmt.Sprintf("velocity %8.4f", r.Velocity)
	tp.boundsLabel.Label = fmt.Sprintf("bounds   [%g, %g]", r.Min, r.Max)
	tp.itemsLabel.Label = fmt.Sprintf("cards %d  input %s", r.Items, r.Input)

	if textWidget := tp.policyButton.Text(); textWidget != nil {
		textWidget.Label = "clamp: " + r.Policy
	}
	if textWidget := tp.blurButton.Text(); textWidget != nil {
		if r.Blur {
			textWidget.Label = "blur: on"
		} else {
			textWidget.Label = "blur: off"
		}
	}
	if textWidget := tp.windowButton.Text(); textWidget != nil {
		textWidget.Label = "window: " + r.Window
	}
}

// Contains reports whether a screen point is over the panel, so pointer input
// there is not also treated as a camera drag.
func (tp *TuningPanel) Contains(x, y int) bool {
	return stdimage.Pt(x, y).In(tp.content.GetWidget().Rect)
}

func (tp *TuningPanel) Update() {
	tp.UI.Update()
}

func (tp *TuningPanel) Draw(screen *ebiten.Image) {
	tp.UI.Draw(screen)
}
