package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const maxImageBytes = 10 << 20

// ImageHandler proxies remote player images so browsers load them from the
// API origin.
type ImageHandler struct {
	client   *http.Client
	fallback []byte
}

// NewImageHandler creates a new ImageHandler. fallback is served, as PNG,
// whenever the upstream fetch fails.
func NewImageHandler(timeout time.Duration, fallback []byte) *ImageHandler {
	return &ImageHandler{
		client:   &http.Client{Timeout: timeout},
		fallback: fallback,
	}
}

// Proxy handles GET /proxy-image?url=.
func (h *ImageHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		WriteError(w, http.StatusBadRequest, MsgMissingURL)
		return
	}

	body, contentType, err := h.fetch(r.Context(), raw)
	if err != nil {
		log.Warn().Err(err).Str("url", raw).Msg("Failed to load image, serving placeholder")
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(h.fallback)))
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(h.fallback)
		return
	}

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *ImageHandler) fetch(ctx context.Context, raw string) ([]byte, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("upstream responded %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(body) > maxImageBytes {
		return nil, "", errors.New("image exceeds size limit")
	}
	return body, resp.Header.Get("Content-Type"), nil
}
