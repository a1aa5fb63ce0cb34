package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Options bounds one logical call: per-attempt timeout, total attempts and
// the fixed backoff between them.
type Options struct {
	Timeout  time.Duration
	Attempts int
	Backoff  time.Duration
}

// DoJSON performs the request up to opts.Attempts times, decoding a 2xx JSON
// body into out (out may be nil). Non-2xx statuses count as failures. The
// last error is returned when every attempt fails; callers decide whether to
// degrade to a fallback or surface it.
func DoJSON(ctx context.Context, client *http.Client, method, url string, headers map[string]string, body any, out any, opts Options) error {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	var lastErr error
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		lastErr = doOnce(ctx, client, method, url, headers, payload, out, opts.Timeout)
		if lastErr == nil {
			return nil
		}
		log.Printf("[httpx] attempt %d/%d failed method=%s url=%s err=%v", attempt, opts.Attempts, method, url, lastErr)
		if attempt < opts.Attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.Backoff):
			}
		}
	}
	return lastErr
}

func doOnce(ctx context.Context, client *http.Client, method, url string, headers map[string]string, payload []byte, out any, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
