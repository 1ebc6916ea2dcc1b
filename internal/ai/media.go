package ai

// supportedImageMediaTypes is the set of MIME types the vision APIs accept.
var supportedImageMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// sniffImageMediaType identifies the image format from magic bytes. Returns
// an empty string when the payload is not a recognized image.
func sniffImageMediaType(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	// PNG
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	// GIF
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		return "image/gif"
	}
	// JPEG
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg"
	}
	// WebP
	if len(data) >= 12 && data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46 &&
		data[8] == 0x57 && data[9] == 0x45 && data[10] == 0x42 && data[11] == 0x50 {
		return "image/webp"
	}
	return ""
}

// resolveMediaType prefers a supported caller-supplied MIME type and falls
// back to magic-byte sniffing. Returns an empty string when the payload is
// not a supported image.
func resolveMediaType(data []byte, mimeType string) string {
	if supportedImageMediaTypes[mimeType] {
		return mimeType
	}
	return sniffImageMediaType(data)
}
