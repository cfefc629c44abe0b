package makuwro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// Props holds the fields of a multipart create or update request. String
// values pass through untouched, []byte and io.Reader values are attached as
// file parts, and everything else is serialized as JSON text.
type Props map[string]any

// encodeProps serializes props into a multipart form body and returns the
// body together with its Content-Type. Fields are written in sorted key
// order.
func encodeProps(props Props) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var err error
		switch value := props[key].(type) {
		case string:
			err = writer.WriteField(key, value)
		case []byte:
			var part io.Writer
			if part, err = writer.CreateFormFile(key, key); err == nil {
				_, err = part.Write(value)
			}
		case io.Reader:
			var part io.Writer
			if part, err = writer.CreateFormFile(key, key); err == nil {
				_, err = io.Copy(part, value)
			}
		default:
			var data []byte
			if data, err = json.Marshal(value); err == nil {
				err = writer.WriteField(key, string(data))
			}
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode form field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
