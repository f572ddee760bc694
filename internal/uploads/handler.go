package uploads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RevanthDadi9/analyzer/internal/extract"
	"github.com/RevanthDadi9/analyzer/internal/relay"
	"github.com/RevanthDadi9/analyzer/internal/shared/metrics"
	"github.com/RevanthDadi9/analyzer/internal/shared/server/middleware"
	"github.com/RevanthDadi9/analyzer/internal/shared/server/respond"
	"github.com/RevanthDadi9/analyzer/internal/shared/telemetry"
)

// Banner is the fixed response of the liveness probe.
const Banner = "File upload server is running"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches upload routes to the engine root.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/", h.upload)
	r.GET("/upload", h.banner)
}

func (h *Handler) upload(c *gin.Context) {
	metrics.IncUploadsReceived()
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.IncUploadsFailed()
		respond.Error(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	c.Set("uploadFileName", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		metrics.IncUploadsFailed()
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	declaredType := fileHeader.Header.Get("Content-Type")

	result, err := h.Svc.Process(c.Request.Context(), fileHeader.Filename, declaredType, file)
	if err != nil {
		metrics.IncUploadsFailed()
		logProcessFailure(c, fileHeader.Filename, declaredType, err)
		respond.Error(c, http.StatusInternalServerError, "failed to process file")
		return
	}

	metrics.IncUploadsCompleted()
	respond.Raw(c, http.StatusOK, result)
}

func (h *Handler) banner(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// logProcessFailure records the internal cause of a failed upload. The
// client only ever sees the generic error body.
func logProcessFailure(c *gin.Context, fileName string, declaredType string, err error) {
	fields := map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"file_name":  fileName,
		"media_type": declaredType,
		"err":        err.Error(),
	}

	var extractErr *extract.Error
	var relayErr *relay.Error
	switch {
	case errors.As(err, &extractErr):
		fields["stage"] = "extract"
		fields["kind"] = extractErr.Kind.String()
	case errors.As(err, &relayErr):
		fields["stage"] = "relay"
		if relayErr.StatusCode != 0 {
			fields["analyzer_status"] = relayErr.StatusCode
		}
	default:
		fields["stage"] = "storage"
	}

	telemetry.Error("upload.process.failed", fields)
}
