package llm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Provider is a streaming chat-completion backend.
type Provider interface {
	Complete(ctx context.Context, messages []Message, opts *Options) (Stream, error)
}

// Stream yields completion chunks until io.EOF.
type Stream interface {
	Recv() (Chunk, error)
	Close() error
}

// Options tune a single completion request.
type Options struct {
	// JSONResponse asks the backend for a machine-parseable JSON object.
	// Backends without a native JSON mode ignore this; callers must still
	// instruct the model through the prompt.
	JSONResponse bool
	Temperature  float64
}

type Chunk struct {
	Content string
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CollectText drains a stream into a single trimmed string.
func CollectText(stream Stream) (string, error) {
	defer stream.Close()

	var content strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		content.WriteString(chunk.Content)
	}
	return strings.TrimSpace(content.String()), nil
}

type sseStream struct {
	resp   *http.Response
	reader *bufio.Reader
	decode func([]byte) (Chunk, error)
}

func newSSEStream(resp *http.Response, decode func([]byte) (Chunk, error)) Stream {
	return &sseStream{
		resp:   resp,
		reader: bufio.NewReader(resp.Body),
		decode: decode,
	}
}

func (s *sseStream) Close() error {
	return s.resp.Body.Close()
}

func (s *sseStream) Recv() (Chunk, error) {
	for {
		data, err := s.readEvent()
		if err != nil {
			return Chunk{}, err
		}
		payload := strings.TrimSpace(string(data))
		if payload == "" {
			continue
		}
		if payload == "[DONE]" {
			return Chunk{}, io.EOF
		}
		chunk, err := s.decode(data)
		if err != nil {
			return Chunk{}, err
		}
		if chunk.Content == "" {
			continue
		}
		return chunk, nil
	}
}

func (s *sseStream) readEvent() ([]byte, error) {
	var dataLines []string
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(dataLines) > 0 {
				return []byte(strings.Join(dataLines, "\n")), nil
			}
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			continue
		}
		if strings.HasPrefix(line, "data:") {
			dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
		if errors.Is(err, io.EOF) {
			if len(dataLines) > 0 {
				return []byte(strings.Join(dataLines, "\n")), nil
			}
			return nil, io.EOF
		}
	}
}

const maxRetries = 3

var retryBaseDelay = 500 * time.Millisecond

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// doWithRetry executes an HTTP request with exponential backoff on transient
// errors. newRequest is called per attempt so the body reader is fresh.
func doWithRetry(ctx context.Context, client *http.Client, newRequest func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if resp != nil {
				resp.Body.Close()
			}
			backoff := retryBaseDelay << (attempt - 1)
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		var req *http.Request
		req, err = newRequest()
		if err != nil {
			return nil, err
		}

		resp, err = client.Do(req)
		if err != nil {
			if isRetryableError(err) {
				continue
			}
			return nil, err
		}
		if isRetryableStatus(resp.StatusCode) {
			continue
		}
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	return nil, fmt.Errorf("llm: giving up after %d attempts: status %s", maxRetries+1, resp.Status)
}
