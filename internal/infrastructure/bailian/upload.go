package bailian

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const parseStatusSuccess = "PARSE_SUCCESS"

// UploadLease is the pre-signed upload slot granted by the service.
type UploadLease struct {
	LeaseID string
	URL     string
	Method  string
	Headers map[string]string
}

type applyLeaseResponse struct {
	Data struct {
		FileUploadLeaseID string `json:"FileUploadLeaseId"`
		Param             struct {
			URL     string            `json:"Url"`
			Method  string            `json:"Method"`
			Headers map[string]string `json:"Headers"`
		} `json:"Param"`
	} `json:"Data"`
}

type addFileResponse struct {
	Data struct {
		FileID string `json:"FileId"`
	} `json:"Data"`
}

type describeFileResponse struct {
	Data struct {
		FileID string `json:"FileId"`
		Status string `json:"Status"`
	} `json:"Data"`
}

// ApplyFileUploadLease requests a pre-signed upload slot for the file.
func (c *Client) ApplyFileUploadLease(ctx context.Context, fileName string, content []byte) (*UploadLease, error) {
	body := map[string]interface{}{
		"FileName":     fileName,
		"Md5":          md5Hex(content),
		"SizeInBytes":  strconv.Itoa(len(content)),
		"CategoryType": "UNSTRUCTURED",
	}

	path := fmt.Sprintf("/%s/datacenter/category/%s", c.cfg.WorkspaceID, c.cfg.CategoryID)
	var resp applyLeaseResponse
	if err := c.doManagement(ctx, http.MethodPost, path, "ApplyFileUploadLease", body, &resp); err != nil {
		return nil, err
	}

	lease := &UploadLease{
		LeaseID: resp.Data.FileUploadLeaseID,
		URL:     resp.Data.Param.URL,
		Method:  resp.Data.Param.Method,
		Headers: resp.Data.Param.Headers,
	}
	if lease.LeaseID == "" || lease.URL == "" {
		return nil, fmt.Errorf("upload lease response missing lease id or url")
	}
	if lease.Method == "" {
		lease.Method = http.MethodPut
	}
	return lease, nil
}

// UploadToLease pushes the file bytes to the lease's pre-signed URL.
func (c *Client) UploadToLease(ctx context.Context, lease *UploadLease, content []byte) error {
	req, err := http.NewRequestWithContext(ctx, lease.Method, lease.URL, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	for k, v := range lease.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}
	return nil
}

// AddFile registers the uploaded lease as a managed document.
func (c *Client) AddFile(ctx context.Context, leaseID string) (string, error) {
	body := map[string]interface{}{
		"LeaseId":    leaseID,
		"Parser":     "DASHSCOPE_DOCMIND",
		"CategoryId": c.cfg.CategoryID,
	}

	path := fmt.Sprintf("/%s/datacenter/file", c.cfg.WorkspaceID)
	var resp addFileResponse
	if err := c.doManagement(ctx, http.MethodPut, path, "AddFile", body, &resp); err != nil {
		return "", err
	}
	if resp.Data.FileID == "" {
		return "", fmt.Errorf("add file response missing file id")
	}
	return resp.Data.FileID, nil
}

// DescribeFile reads the parse status of a managed document.
func (c *Client) DescribeFile(ctx context.Context, fileID string) (string, error) {
	path := fmt.Sprintf("/%s/datacenter/file/%s", c.cfg.WorkspaceID, fileID)
	var resp describeFileResponse
	if err := c.doManagement(ctx, http.MethodGet, path, "DescribeFile", nil, &resp); err != nil {
		return "", err
	}
	return resp.Data.Status, nil
}

// WaitForParse polls DescribeFile at a fixed interval until the document
// reaches PARSE_SUCCESS. The loop has no timeout of its own; callers bound
// it through ctx.
func (c *Client) WaitForParse(ctx context.Context, fileID string) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := c.DescribeFile(ctx, fileID)
		if err != nil {
			return err
		}
		if status == parseStatusSuccess {
			return nil
		}
		c.logger.Debugw("document still parsing", "file_id", fileID, "status", status)
	}
}

// SubmitIndexAddDocumentsJob appends the parsed document to the index.
func (c *Client) SubmitIndexAddDocumentsJob(ctx context.Context, fileID string) error {
	body := map[string]interface{}{
		"IndexId":     c.cfg.IndexID,
		"SourceType":  "DATA_CENTER_FILE",
		"DocumentIds": []string{fileID},
	}

	path := fmt.Sprintf("/%s/index/add_documents_to_index", c.cfg.WorkspaceID)
	return c.doManagement(ctx, http.MethodPost, path, "SubmitIndexAddDocumentsJob", body, nil)
}

// UploadDocument runs the full pipeline: lease, upload, register, wait for
// parsing, append to the index. Returns the external file id.
func (c *Client) UploadDocument(ctx context.Context, fileName string, content []byte) (string, error) {
	lease, err := c.ApplyFileUploadLease(ctx, fileName, content)
	if err != nil {
		return "", fmt.Errorf("apply upload lease: %w", err)
	}

	if err := c.UploadToLease(ctx, lease, content); err != nil {
		return "", fmt.Errorf("upload to lease: %w", err)
	}

	fileID, err := c.AddFile(ctx, lease.LeaseID)
	if err != nil {
		return "", fmt.Errorf("add file: %w", err)
	}

	if err := c.WaitForParse(ctx, fileID); err != nil {
		return "", fmt.Errorf("wait for parse: %w", err)
	}

	if err := c.SubmitIndexAddDocumentsJob(ctx, fileID); err != nil {
		return "", fmt.Errorf("submit index job: %w", err)
	}

	c.logger.Infow("document uploaded to knowledge base", "file_name", fileName, "file_id", fileID)
	return fileID, nil
}

// DeleteFile removes a managed document.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	path := fmt.Sprintf("/%s/datacenter/file/%s", c.cfg.WorkspaceID, fileID)
	return c.doManagement(ctx, http.MethodDelete, path, "DeleteFile", nil, nil)
}

// DeleteIndexDocument detaches the document from the index.
func (c *Client) DeleteIndexDocument(ctx context.Context, fileID string) error {
	body := map[string]interface{}{
		"IndexId":     c.cfg.IndexID,
		"DocumentIds": []string{fileID},
	}

	path := fmt.Sprintf("/%s/index/delete_index_document", c.cfg.WorkspaceID)
	return c.doManagement(ctx, http.MethodPost, path, "DeleteIndexDocument", body, nil)
}

// DeleteDocument removes the document from management and from the index.
// Failures are reported but there is nothing to roll back remotely.
func (c *Client) DeleteDocument(ctx context.Context, fileID string) error {
	if err := c.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if err := c.DeleteIndexDocument(ctx, fileID); err != nil {
		return fmt.Errorf("delete index document: %w", err)
	}
	return nil
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
