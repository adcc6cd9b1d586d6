package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"studentdocs-backend/internal/bootstrap"
	"studentdocs-backend/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func uploadDocument(t *testing.T, router *gin.Engine, guestID, docType, docName, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.WriteField("document_type", docType); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.WriteField("document_name", docName); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadListDownloadDelete(t *testing.T) {
	router := buildTestRouter(t)

	content := []byte("%PDF-1.4 fake certificate")
	resp := uploadDocument(t, router, "test-guest", "certificate", "AWS Cert", "cert.pdf", content)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID   string `json:"documentId"`
		DocumentName string `json:"documentName"`
		FileSize     int64  `json:"fileSize"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if created.DocumentName != "AWS Cert" {
		t.Fatalf("expected documentName AWS Cert, got %s", created.DocumentName)
	}
	if created.FileSize != int64(len(content)) {
		t.Fatalf("expected fileSize %d, got %d", len(content), created.FileSize)
	}

	// List shows the new document.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	reqList.Header.Set("X-Guest-Id", "test-guest")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}

	var listed []struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].DocumentID != created.DocumentID {
		t.Fatalf("expected listing with %s, got %+v", created.DocumentID, listed)
	}

	// Download round-trips the bytes.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID+"/download", nil)
	reqGet.Header.Set("X-Guest-Id", "test-guest")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	if !bytes.Equal(respGet.Body.Bytes(), content) {
		t.Fatalf("downloaded bytes differ from uploaded")
	}
	if cd := respGet.Header().Get("Content-Disposition"); cd == "" {
		t.Fatalf("expected Content-Disposition header")
	}

	// Delete, then verify gone.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+created.DocumentID, nil)
	reqDel.Header.Set("X-Guest-Id", "test-guest")
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respDel.Code, respDel.Body.String())
	}

	reqDel2 := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+created.DocumentID, nil)
	reqDel2.Header.Set("X-Guest-Id", "test-guest")
	respDel2 := httptest.NewRecorder()
	router.ServeHTTP(respDel2, reqDel2)
	if respDel2.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", respDel2.Code)
	}
}

func TestDocumentsOwnerScoping(t *testing.T) {
	router := buildTestRouter(t)

	resp := uploadDocument(t, router, "guest-a", "marksheet", "Sem 1 Marks", "marks.pdf", []byte("marks"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	// Another principal sees an empty listing.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	reqList.Header.Set("X-Guest-Id", "guest-b")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listed []json.RawMessage
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty listing for other principal, got %d entries", len(listed))
	}

	// And cannot download or delete across owners.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID+"/download", nil)
	reqGet.Header.Set("X-Guest-Id", "guest-b")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respGet.Code)
	}

	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+created.DocumentID, nil)
	reqDel.Header.Set("X-Guest-Id", "guest-b")
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respDel.Code)
	}
}

func TestDocumentsRequireIdentity(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestDocumentsUploadValidation(t *testing.T) {
	router := buildTestRouter(t)

	// Missing document_type and document_name.
	resp := uploadDocument(t, router, "test-guest", "", "", "notes.txt", []byte("notes"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	// Missing file part.
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("document_type", "resume"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
