package catalog

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/model"
)

// Placeholder lookup and generation
const (
	PlaceholderDir  = "placeholder"
	PlaceholderFile = "placeholder.png"
	PlaceholderSize = 32
)

// Icon is the decoded-and-validated image data for one entry
type Icon struct {
	Name        string
	Content     []byte
	Placeholder bool
}

// IconResolver maps entries to icon bytes, substituting a placeholder when the
// file is missing or does not decode. Results are cached per entry id.
type IconResolver struct {
	dir         string
	logger      *zap.Logger
	cache       map[string]Icon
	placeholder Icon
}

// NewIconResolver creates a resolver for icons relative to dir. A
// placeholder/placeholder.png beside the catalog is preferred over the
// generated one.
func NewIconResolver(dir string, logger *zap.Logger) *IconResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &IconResolver{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]Icon),
	}
	r.placeholder = r.loadPlaceholder()
	return r
}

// Placeholder returns the fallback icon
func (r *IconResolver) Placeholder() Icon {
	return r.placeholder
}

// Resolve returns the icon for e, never failing
func (r *IconResolver) Resolve(e model.Entry) Icon {
	if icon, ok := r.cache[e.ID]; ok {
		return icon
	}

	icon := r.placeholder
	if e.HasIcon() {
		path := r.path(e.Icon)
		data, err := readImage(path)
		if err != nil {
			r.logger.Debug("using placeholder icon",
				zap.String("id", e.ID),
				zap.String("path", path),
				zap.Error(err))
		} else {
			icon = Icon{Name: filepath.Base(path), Content: data}
		}
	}

	r.cache[e.ID] = icon
	return icon
}

func (r *IconResolver) path(icon string) string {
	p := filepath.FromSlash(icon)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.dir, p)
}

func (r *IconResolver) loadPlaceholder() Icon {
	path := filepath.Join(r.dir, PlaceholderDir, PlaceholderFile)
	if data, err := readImage(path); err == nil {
		return Icon{Name: PlaceholderFile, Content: data, Placeholder: true}
	}
	return Icon{Name: PlaceholderFile, Content: GeneratePlaceholder(), Placeholder: true}
}

// readImage reads path and checks that it is an image the UI can draw
func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") && bytes.Contains(data, []byte("<svg")) {
		return data, nil
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// GeneratePlaceholder renders a small grey tile with a darker border as PNG
func GeneratePlaceholder() []byte {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	border := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	fill := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	draw.Draw(img, img.Bounds(), &image.Uniform{C: border}, image.Point{}, draw.Src)
	inner := image.Rect(2, 2, PlaceholderSize-2, PlaceholderSize-2)
	draw.Draw(img, inner, &image.Uniform{C: fill}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	// Encoding an in-memory RGBA into a bytes.Buffer cannot fail
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
