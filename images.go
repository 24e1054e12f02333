package landing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"mime"
	"path"

	"golang.org/x/image/draw"

	"github.com/acebook/zustand-landing/views"
)

const (
	jpegQuality = 80
	hashLen     = 12
	assetPrefix = "/assets/"

	bearImage  = "img/bear.jpg"
	stylesheet = "css/landing.css"
)

// ErrAssetNotFound is returned when a static asset is missing from the
// static tree.
var ErrAssetNotFound = errors.New("landing: asset not found")

// Asset is a static file resolved to a content-addressed URL. It is never
// modified after it is loaded.
type Asset struct {
	Name        string // base file name, e.g. "bear.jpg"
	Hash        string
	URL         string // "/assets/<hash>/<name>"
	ContentType string
	Body        []byte
	Width       int // images only
	Height      int
}

// LoadImageAsset decodes the image at name in fsys, downscales it to
// maxWidth when wider, and re-encodes it as JPEG. maxWidth <= 0 keeps the
// original size.
func LoadImageAsset(fsys fs.FS, name string, maxWidth int) (Asset, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Asset{}, assetError(name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Asset{}, fmt.Errorf("landing: decode %s: %w", name, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Asset{}, fmt.Errorf("landing: encode %s: %w", name, err)
	}

	a := newAsset(jpegName(name), buf.Bytes())
	a.ContentType = "image/jpeg"
	a.Width = w
	a.Height = h
	return a, nil
}

// LoadFileAsset reads name from fsys unchanged.
func LoadFileAsset(fsys fs.FS, name string) (Asset, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Asset{}, assetError(name, err)
	}
	return newAsset(path.Base(name), b), nil
}

func newAsset(name string, body []byte) Asset {
	sum := sha256.Sum256(body)
	hash := hex.EncodeToString(sum[:])[:hashLen]
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return Asset{
		Name:        name,
		Hash:        hash,
		URL:         assetPrefix + hash + "/" + name,
		ContentType: ct,
		Body:        body,
	}
}

// jpegName keeps the base name and forces a .jpg extension.
func jpegName(name string) string {
	base := path.Base(name)
	ext := path.Ext(base)
	if ext == ".jpg" {
		return base
	}
	return base[:len(base)-len(ext)] + ".jpg"
}

func assetError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return fmt.Errorf("landing: open %s: %w", name, err)
}

// AssetSet holds the resolved assets the page references.
type AssetSet struct {
	Bear       Asset
	Stylesheet Asset

	byKey map[string]Asset
}

// LoadAssets resolves every asset the landing page needs from fsys.
// A missing asset is an error.
func LoadAssets(fsys fs.FS, maxWidth int) (*AssetSet, error) {
	bear, err := LoadImageAsset(fsys, bearImage, maxWidth)
	if err != nil {
		return nil, err
	}
	css, err := LoadFileAsset(fsys, stylesheet)
	if err != nil {
		return nil, err
	}
	s := &AssetSet{Bear: bear, Stylesheet: css, byKey: make(map[string]Asset)}
	s.add(bear)
	s.add(css)
	return s, nil
}

func (s *AssetSet) add(a Asset) {
	s.byKey[a.Hash+"/"+a.Name] = a
}

// Lookup returns the asset published under /assets/<hash>/<name>.
func (s *AssetSet) Lookup(hash, name string) (Asset, bool) {
	a, ok := s.byKey[hash+"/"+name]
	return a, ok
}

// View returns the asset URLs for templates.
func (s *AssetSet) View() views.Assets {
	return views.Assets{Bear: s.Bear.URL, Stylesheet: s.Stylesheet.URL}
}
