package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"haitch/internal/shared/constants"
	"haitch/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and
// optional JSON body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// MultipartFile describes one file part for NewMultipartContext.
type MultipartFile struct {
	Field    string
	FileName string
	Content  []byte
}

// NewMultipartContext creates a test gin.Context carrying a multipart form
// with the given fields and files.
func NewMultipartContext(method, path string, fields map[string]string, files []MultipartFile) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	for _, f := range files {
		part, _ := writer.CreateFormFile(f.Field, f.FileName)
		_, _ = io.Copy(part, bytes.NewReader(f.Content))
	}
	_ = writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAuthContext simulates the auth middleware for the given user.
func SetAuthContext(c *gin.Context, userID uint, role string) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, role)
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.APIError for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) Fatal(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...any) {}
