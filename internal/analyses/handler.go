package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
}

type jsonRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	Industry       string `json:"industry"`
}

// createAnalysis accepts either a multipart form (resume file or resumeText
// field, jobDescription, optional industry) or a JSON body with the same
// fields. Uploads are processed in memory and discarded.
func (h *Handler) createAnalysis(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	analysis, err := h.Svc.Analyze(input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyResume), errors.Is(err, ErrEmptyJobDescription):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) bindInput(c *gin.Context) (Input, bool) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req jsonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
			return Input{}, false
		}
		return Input{
			ResumeText:     req.ResumeText,
			JobDescription: req.JobDescription,
			Industry:       req.Industry,
		}, true
	}

	input := Input{
		ResumeText:     c.PostForm("resumeText"),
		JobDescription: c.PostForm("jobDescription"),
		Industry:       c.PostForm("industry"),
	}

	fileHeader, err := c.FormFile("resume")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
			return Input{}, false
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
			return Input{}, false
		}

		text, extractErr := extract.Text(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
		switch {
		case errors.Is(extractErr, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupported, "upload a PDF, DOCX, or plain-text resume", nil)
			return Input{}, false
		case extractErr != nil:
			respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeExtraction, "could not extract text from the uploaded file", nil)
			return Input{}, false
		}
		input.ResumeText = text
	}

	return input, true
}
