package makuwro

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ValidateImage checks that data decodes as a supported image format. A
// failure reports ErrUnallowedFileType; the check reads only the header and
// holds no resources afterwards.
func ValidateImage(data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnallowedFileType, err)
	}
	return nil
}

// UploadContentImage attaches an image to an existing content item. The bytes
// are validated locally first, so an undecodable file fails without a network
// round trip the server would reject anyway.
func (c *Client) UploadContentImage(ctx context.Context, typ ContentType, username, slug, filename string, data []byte) error {
	if slug == "" || filename == "" || len(data) == 0 {
		return fmt.Errorf("image upload requires a slug, filename and image data: %w", ErrMissingArgument)
	}

	if err := ValidateImage(data); err != nil {
		return err
	}

	path, err := c.contentPath(typ, username, slug, false)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("failed to encode image upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to encode image upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize image upload: %w", err)
	}

	_, err = c.request(ctx, http.MethodPost, path+"/images", nil, &buf, writer.FormDataContentType(), false)
	return err
}
