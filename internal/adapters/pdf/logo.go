package pdf

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// decodeLogo accepts a data URL or bare base64 and returns the image bytes when
// they hold a PNG or JPEG. Anything else is skipped and the header prints without a logo.
func decodeLogo(logo string) ([]byte, extension.Type, bool) {
	logo = strings.TrimSpace(logo)
	if logo == "" {
		return nil, "", false
	}
	if strings.HasPrefix(logo, "data:") {
		_, payload, found := strings.Cut(logo, ",")
		if !found {
			return nil, "", false
		}
		logo = payload
	}
	raw, err := base64.StdEncoding.DecodeString(logo)
	if err != nil {
		return nil, "", false
	}
	switch {
	case bytes.HasPrefix(raw, pngMagic):
		return raw, extension.Png, true
	case bytes.HasPrefix(raw, jpegMagic):
		return raw, extension.Jpg, true
	}
	return nil, "", false
}

func logoImage(raw []byte, ext extension.Type) core.Component {
	return image.NewFromBytes(raw, ext, props.Rect{Percent: 90})
}
