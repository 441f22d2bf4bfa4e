package mimetypes

import "mime"

type MIME string

const (
	Unknown MIME = "unknown"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"
)

// images accepted as chat attachments and profile pictures.
// SVG is left out: it can carry scripts.
var images = map[MIME]struct{}{
	ImagePNG:  {},
	ImageJPEG: {},
	ImageGIF:  {},
	ImageWEBP: {},
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// AllowedImage parses a detected type, parameters included, and checks it against the accepted images.
func AllowedImage(detected string) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	if _, ok := images[MIME(mt)]; !ok {
		return MIME(mt), false
	}
	return MIME(mt), true
}
