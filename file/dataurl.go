// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package file

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Image is a decoded image data URL.
type Image struct {
	// ContentType is the MIME type, e.g. image/jpeg.
	ContentType string

	// Ext is the file extension without a dot, e.g. jpeg.
	Ext string

	Data []byte
}

// imageExtensions maps the accepted image content types to file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/avif": "avif",
}

// IsDataURL reports whether s is a data URL rather than a link.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeImageDataURL decodes a base64 image data URL such as
// data:image/png;base64,iVBOR...
func DecodeImageDataURL(dataURL string) (*Image, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, fmt.Errorf("file: invalid data URL %q", truncate(dataURL))
	}
	ct, contents, ok := strings.Cut(rest, ";")
	if !ok {
		return nil, fmt.Errorf("file: invalid data URL %q", truncate(dataURL))
	}

	ext, ok := imageExtensions[ct]
	if !ok {
		return nil, fmt.Errorf("file: only raster image data URLs supported, got %q", ct)
	}

	b64, ok := strings.CutPrefix(contents, "base64,")
	if !ok {
		return nil, fmt.Errorf("file: only base64 data URL supported, got %q", truncate(dataURL))
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("file: decoding base64 data URL: %w", err)
	}
	return &Image{
		ContentType: ct,
		Ext:         ext,
		Data:        data,
	}, nil
}

func truncate(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
