// Package images normalizes recipe and fridge images to base64. Input can
// be an http(s) URL (fetched and inlined), a data URI, or an already
// base64-encoded string.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MaxImageBytes caps decoded image size at 5MB.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrInvalidImageInput = errors.New("invalid image input")
	ErrImageTooLarge     = errors.New("image size exceeds 5MB limit")
	ErrImageFetchFailed  = errors.New("failed to fetch image from URL")
)

var ErrorMap = map[error]int{
	ErrInvalidImageInput: http.StatusBadRequest,
	ErrImageTooLarge:     http.StatusBadRequest,
	ErrImageFetchFailed:  http.StatusBadGateway,
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Process normalizes the input to a plain base64 string and validates its
// size.
func Process(ctx context.Context, input string) (string, error) {
	var encoded string

	switch {
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		data, err := fetch(ctx, input)
		if err != nil {
			return "", err
		}
		encoded = base64.StdEncoding.EncodeToString(data)

	case strings.HasPrefix(input, "data:image"):
		_, payload, found := strings.Cut(input, ",")
		if !found || payload == "" {
			return "", ErrInvalidImageInput
		}
		encoded = payload

	case input != "":
		encoded = input

	default:
		return "", ErrInvalidImageInput
	}

	if err := Validate(encoded); err != nil {
		return "", err
	}

	return encoded, nil
}

// FromBytes encodes raw upload bytes as a data URI with the given mime
// type.
func FromBytes(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidImageInput
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

// Validate checks that the string is decodable base64 within the size cap.
func Validate(encoded string) error {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ErrInvalidImageInput
	}

	if len(data) > MaxImageBytes {
		return ErrImageTooLarge
	}

	return nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrImageFetchFailed, resp.StatusCode)
	}

	// Read one byte past the cap so oversized bodies are detected without
	// buffering the whole thing.
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}

	if len(data) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	return data, nil
}
