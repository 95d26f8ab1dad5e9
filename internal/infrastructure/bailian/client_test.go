package bailian

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/shared/config"
	"haitch/internal/shared/logger"
)

type fakeService struct {
	mu            sync.Mutex
	calls         []string
	describeCount int
	// parse succeeds after this many DescribeFile calls
	parseAfter int
	uploadURL  string
}

func (f *fakeService) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeService) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newFakeServer(t *testing.T, f *fakeService) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/ws-1/datacenter/category/cat-1", func(w http.ResponseWriter, r *http.Request) {
		f.record("ApplyFileUploadLease")
		fmt.Fprintf(w, `{"Data":{"FileUploadLeaseId":"lease-1","Param":{"Url":"%s/upload-slot","Method":"PUT","Headers":{"X-bailian-extra":"extra"}}}}`, server.URL)
	})
	mux.HandleFunc("/upload-slot", func(w http.ResponseWriter, r *http.Request) {
		f.record("Upload")
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "extra", r.Header.Get("X-bailian-extra"))
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/ws-1/datacenter/file", func(w http.ResponseWriter, r *http.Request) {
		f.record("AddFile")
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lease-1", body["LeaseId"])
		assert.Equal(t, "DASHSCOPE_DOCMIND", body["Parser"])
		fmt.Fprint(w, `{"Data":{"FileId":"file-9"}}`)
	})
	mux.HandleFunc("/ws-1/datacenter/file/file-9", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			f.record("DeleteFile")
			fmt.Fprint(w, `{}`)
			return
		}
		f.record("DescribeFile")
		f.mu.Lock()
		f.describeCount++
		done := f.describeCount >= f.parseAfter
		f.mu.Unlock()
		status := "PARSING"
		if done {
			status = "PARSE_SUCCESS"
		}
		fmt.Fprintf(w, `{"Data":{"FileId":"file-9","Status":"%s"}}`, status)
	})
	mux.HandleFunc("/ws-1/index/add_documents_to_index", func(w http.ResponseWriter, r *http.Request) {
		f.record("SubmitIndexAddDocumentsJob")
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "idx-1", body["IndexId"])
		assert.Equal(t, "DATA_CENTER_FILE", body["SourceType"])
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/ws-1/index/delete_index_document", func(w http.ResponseWriter, r *http.Request) {
		f.record("DeleteIndexDocument")
		fmt.Fprint(w, `{}`)
	})

	return server
}

func newTestClient(server *httptest.Server) *Client {
	cfg := &config.KnowledgeConfig{
		Endpoint:        "bailian.test",
		AccessKeyID:     "ak",
		AccessKeySecret: "sk",
		WorkspaceID:     "ws-1",
		CategoryID:      "cat-1",
		IndexID:         "idx-1",
		AppID:           "app-1",
		APIKey:          "key",
	}
	return NewClient(cfg, logger.NewLogger(),
		WithBaseURL(server.URL),
		WithAppBaseURL(server.URL),
		WithPollInterval(5*time.Millisecond),
	)
}

func TestClient_UploadDocument_PipelineOrder(t *testing.T) {
	fake := &fakeService{parseAfter: 3}
	server := newFakeServer(t, fake)
	client := newTestClient(server)

	fileID, err := client.UploadDocument(context.Background(), "ticket-1.txt", []byte("text"))
	require.NoError(t, err)
	assert.Equal(t, "file-9", fileID)

	calls := fake.callList()
	assert.Equal(t, "ApplyFileUploadLease", calls[0])
	assert.Equal(t, "Upload", calls[1])
	assert.Equal(t, "AddFile", calls[2])
	// Polling repeats DescribeFile until the parse succeeds.
	assert.Equal(t, []string{"DescribeFile", "DescribeFile", "DescribeFile"}, calls[3:6])
	assert.Equal(t, "SubmitIndexAddDocumentsJob", calls[6])
	assert.Len(t, calls, 7)
}

func TestClient_WaitForParse_ContextCancel(t *testing.T) {
	fake := &fakeService{parseAfter: 1 << 30}
	server := newFakeServer(t, fake)
	client := newTestClient(server)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.WaitForParse(ctx, "file-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_DeleteDocument(t *testing.T) {
	fake := &fakeService{}
	server := newFakeServer(t, fake)
	client := newTestClient(server)

	require.NoError(t, client.DeleteDocument(context.Background(), "file-9"))
	assert.Equal(t, []string{"DeleteFile", "DeleteIndexDocument"}, fake.callList())
}

func TestClient_ManagementErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"Code":"Forbidden.NoPermission","Message":"no permission"}`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)
	_, err := client.ApplyFileUploadLease(context.Background(), "f.txt", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no permission")
}

func TestClient_StreamChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "enable", r.Header.Get("X-DashScope-SSE"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/apps/app-1/completion"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data:{\"output\":{\"text\":\"hello\"}}\n\n")
		fmt.Fprint(w, "data:{\"output\":{\"text\":\" world\"}}\n\n")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	var chunks []string
	err := client.StreamChat(context.Background(), "hi", func(text string) error {
		chunks = append(chunks, text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", " world"}, chunks)
}

func TestClient_StreamChat_CallbackErrorStops(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data:{\"output\":{\"text\":\"a\"}}\n\n")
		fmt.Fprint(w, "data:{\"output\":{\"text\":\"b\"}}\n\n")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	count := 0
	err := client.StreamChat(context.Background(), "hi", func(string) error {
		count++
		return fmt.Errorf("stop")
	})
	require.Error(t, err)
	assert.Equal(t, 1, count)
}
