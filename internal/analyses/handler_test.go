package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(NewService()).RegisterRoutes(api)
	return router
}

func TestCreateAnalysisJSON(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(map[string]string{
		"resumeText": "Python developer with 5 years of experience. Led two launches. " +
			"Skills: Python, SQL. Bachelor's degree in Computer Science.",
		"jobDescription": "Python developer, 3+ years of experience. Required: Python, SQL.",
		"industry":       "tech",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var analysis Analysis
	if err := json.Unmarshal(resp.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.ID == "" {
		t.Fatalf("expected analysis ID in response")
	}
	if analysis.Industry != "tech" {
		t.Fatalf("industry = %q, want tech", analysis.Industry)
	}
	if analysis.Score.OverallScore < 0 || analysis.Score.OverallScore > 100 {
		t.Fatalf("overall score %d out of range", analysis.Score.OverallScore)
	}
}

func TestCreateAnalysisMultipartTextFields(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("resumeText", "Go developer with 4 years of experience. Built services in Go and SQL.")
	_ = writer.WriteField("jobDescription", "Go developer wanted, SQL a plus.")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateAnalysisMultipartUpload(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("Backend engineer, 6 years of experience with Python and SQL.")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = writer.WriteField("jobDescription", "Backend engineer, Python required.")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var analysis Analysis
	if err := json.Unmarshal(resp.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Score.Metrics.WordCount == 0 {
		t.Fatalf("expected extracted resume text to be scored")
	}
}

func TestCreateAnalysisValidation(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{name: "missing_resume", body: `{"jobDescription":"some job"}`},
		{name: "missing_job", body: `{"resumeText":"some resume"}`},
		{name: "malformed_json", body: `{"resumeText":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if envelope.Error.Code != ErrorCodeValidation {
				t.Fatalf("error code = %q, want %q", envelope.Error.Code, ErrorCodeValidation)
			}
		})
	}
}

func TestCreateAnalysisUnsupportedUpload(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = writer.WriteField("jobDescription", "any job")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected status 415, got %d: %s", resp.Code, resp.Body.String())
	}
}
