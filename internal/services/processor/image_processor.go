package processor

import (
	"context"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/internal/services/qrcode"
	"github.com/leafspace/qr-studio/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

type ImageProcessor struct {
	encoder  *qrcode.Encoder
	fonts    *FontSource
	style    Style
	logoPath string
	now      func() time.Time
	logger   *zap.Logger
}

type Options struct {
	Style Style
	Now   func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Style: DefaultStyle(),
		Now:   time.Now,
	}
}

func NewImageProcessor(logoPath string, fonts *FontSource, logger *zap.Logger, opts ...Options) *ImageProcessor {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if fonts == nil {
		fonts = LoadFont("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := fonts.Err(); err != nil {
		logger.Warn("Caption font unavailable, using built-in font", zap.Error(err))
	}

	return &ImageProcessor{
		encoder:  qrcode.NewEncoder(),
		fonts:    fonts,
		style:    options.Style,
		logoPath: logoPath,
		now:      options.Now,
		logger:   logger,
	}
}

// Render runs the whole pipeline for one request and encodes the result to
// PNG exactly once.
func (p *ImageProcessor) Render(ctx context.Context, req *models.RenderRequest) (*models.RenderResult, error) {
	img, layout, err := p.ComposeImage(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := p.encodePNG(img)
	if err != nil {
		return nil, err
	}

	renderedAt := p.now()

	p.logger.Debug("QR code rendered",
		zap.Int("version", layout.Version),
		zap.Int("width", layout.Canvas.Dx()),
		zap.Int("height", layout.Canvas.Dy()),
		zap.Bool("caption", layout.HasCaption()),
		zap.Bool("caption_truncated", layout.CaptionTruncated),
		zap.Bool("font_fallback", layout.FontFallback),
	)

	return &models.RenderResult{
		ID:         uuid.New().String(),
		Filename:   utils.GenerateFilename(renderedAt),
		MimeType:   models.MimeTypePNG,
		Width:      layout.Canvas.Dx(),
		Height:     layout.Canvas.Dy(),
		Version:    layout.Version,
		FileSize:   int64(len(data)),
		RenderedAt: renderedAt,
		PNG:        data,
	}, nil
}

// ComposeImage validates the request, encodes the URL, loads the logo and
// lays everything out on a fresh canvas.
func (p *ImageProcessor) ComposeImage(ctx context.Context, req *models.RenderRequest) (*image.NRGBA, *Layout, error) {
	if err := p.ValidateRequest(req); err != nil {
		return nil, nil, err
	}

	grid, err := p.encoder.Encode(req.URL)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	logo, err := p.loadLogo()
	if err != nil {
		return nil, nil, err
	}

	img, layout := p.compose(grid, logo, req.Caption)
	return img, layout, nil
}

func (p *ImageProcessor) compose(grid *qrcode.Grid, logo image.Image, caption string) (*image.NRGBA, *Layout) {
	s := p.style
	layout := &Layout{Version: grid.Version()}

	qr := p.renderGrid(grid)
	gridW, gridH := qr.Bounds().Dx(), qr.Bounds().Dy()

	resized := p.resizeLogo(logo, gridW)
	logoW, logoH := resized.Bounds().Dx(), resized.Bounds().Dy()

	// Strip height
	contentH := logoH
	var face font.Face
	if caption != "" {
		face, layout.FontFallback = p.fonts.Face(s.FontSize)
		defer face.Close()
		contentH = max(contentH, lineHeight(face))
	}
	layout.StripHeight = contentH + s.StripMargin

	canvasW := gridW + 2*s.Padding
	canvasH := gridH + 2*s.Padding + layout.StripHeight
	canvas := imaging.New(canvasW, canvasH, White)
	layout.Canvas = canvas.Bounds()

	// Grid and border
	origin := image.Pt(s.Padding, s.Padding)
	canvas = imaging.Paste(canvas, qr, origin)
	layout.Grid = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(gridW, gridH))}
	layout.Border = borderRect(layout.Grid, s.BorderInset)
	strokeRect(canvas, layout.Border, s.BorderWidth, s.Accent)

	// Logo, bottom left
	logoPos := image.Pt(s.Padding, layout.Grid.Max.Y+s.LogoOffset)
	canvas = imaging.Overlay(canvas, resized, logoPos, 1.0)
	layout.Logo = image.Rectangle{Min: logoPos, Max: logoPos.Add(image.Pt(logoW, logoH))}

	// Caption, right aligned and centred on the logo
	if caption != "" {
		rightX := canvasW - s.Padding
		text, truncated := fitCaption(face, caption, rightX-(layout.Logo.Max.X+s.CaptionGap))
		layout.CaptionText, layout.CaptionTruncated = text, truncated
		if text != "" {
			layout.Caption = drawCaption(canvas, face, text, image.NewUniform(s.Accent),
				rightX, logoPos.Y, logoH)
		}
	}

	return canvas, layout
}

// FontStatus describes which caption font renders will use.
func (p *ImageProcessor) FontStatus() string {
	if err := p.fonts.Err(); err != nil {
		return "fallback: " + err.Error()
	}
	if p.fonts.Fallback() {
		return "built-in"
	}
	return "healthy"
}
