package scenes

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/client/fonts"
	"github.com/cbodonnell/kangaroo/client/objects"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// WinScene is the modal drawn over the game once the collectible is picked up.
type WinScene struct {
	*BaseScene

	message     string
	onPlayAgain func() error
	ui          *ebitenui.UI
}

type WinSceneOptions struct {
	// Message is the success message shown above the button.
	Message string
	// OnPlayAgain is called when the play again button is clicked.
	OnPlayAgain func() error
}

var _ Scene = &WinScene{}

func NewWinScene(opts WinSceneOptions) (Scene, error) {
	return &WinScene{
		BaseScene:   NewBaseScene(objects.NewBaseObject("win-root", nil)),
		message:     opts.Message,
		onPlayAgain: opts.OnPlayAgain,
	}, nil
}

func (s *WinScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *WinScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 34, G: 139, B: 34, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 28, G: 115, B: 28, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 20, G: 90, B: 20, A: 255}),
	}

	fontFace := fonts.MPlusNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{A: 128})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	modal := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 255, G: 255, B: 255, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    30,
				Left:   40,
				Right:  40,
				Bottom: 30,
			}))),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(modal)

	modal.AddChild(widget.NewText(
		widget.TextOpts.Text(s.message, fontFace, color.NRGBA{R: 30, G: 30, B: 30, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Play again", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.onPlayAgain == nil {
				return
			}
			if err := s.onPlayAgain(); err != nil {
				log.Error("Failed to restart: %v", err)
			}
		}),
	)
	modal.AddChild(button)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *WinScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *WinScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
