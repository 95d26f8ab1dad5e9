package bailian

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type completionRequest struct {
	Input      completionInput      `json:"input"`
	Parameters completionParameters `json:"parameters"`
}

type completionInput struct {
	Prompt string `json:"prompt"`
}

type completionParameters struct {
	IncrementalOutput bool `json:"incremental_output"`
}

type completionChunk struct {
	Output struct {
		Text string `json:"text"`
	} `json:"output"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StreamChat sends the prompt to the LLM application and invokes onChunk for
// each incremental text fragment as it arrives.
func (c *Client) StreamChat(ctx context.Context, prompt string, onChunk func(text string) error) error {
	body, err := json.Marshal(completionRequest{
		Input:      completionInput{Prompt: prompt},
		Parameters: completionParameters{IncrementalOutput: true},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/apps/%s/completion", c.appBaseURL, c.cfg.AppID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("X-DashScope-SSE", "enable")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		var chunk completionChunk
		if json.Unmarshal(data, &chunk) == nil && chunk.Message != "" {
			return fmt.Errorf("chat failed: %s (%s)", chunk.Message, chunk.Code)
		}
		return fmt.Errorf("chat failed with status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			c.logger.Warnw("skipping malformed chat chunk", "error", err)
			continue
		}
		if chunk.Output.Text == "" {
			continue
		}
		if err := onChunk(chunk.Output.Text); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("chat stream read failed: %w", err)
	}
	return nil
}
