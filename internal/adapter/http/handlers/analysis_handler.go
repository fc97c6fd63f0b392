package handlers

import (
	"errors"
	"io"
	"net/http"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/usecase"
	"precifica_ti/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// MaxUploadSize bounds an edital upload.
	MaxUploadSize = 20 << 20

	sessionHeader = "X-Session-ID"
)

var (
	errMissingUpload  = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "A file must be sent in the \"file\" field", http.StatusBadRequest)
	errUploadTooLarge = pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
)

// AnalysisHandler receives editais and serves their analyses.
type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// AnalyzeEdital runs one analysis over a multipart upload. The session is
// taken from the X-Session-ID header or the "session" form field; a newer
// upload in the same session supersedes this one.
//
// @Summary      Analyze an edital
// @Tags         analyses
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "Edital (plain text)"
// @Param        analysis_type  formData  string  false  "geral, tdr, documentacao or produtos"
// @Param        session        formData  string  false  "Session key"
// @Success      201  {object}  entities.AnalysisResult
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      415  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /analyses [post]
func (h *AnalysisHandler) AnalyzeEdital(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(errUploadTooLarge.HTTPStatus, errUploadTooLarge.ToHTTPError())
			return
		}
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errMissingUpload.HTTPStatus, errMissingUpload.ToHTTPError())
		return
	}

	session := c.GetHeader(sessionHeader)
	if session == "" {
		session = c.PostForm("session")
	}

	in := usecase.AnalyzeInput{
		Session:      session,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
		AnalysisType: entities.AnalysisType(strings.ToLower(strings.TrimSpace(c.PostForm("analysis_type")))),
	}
	log := logrus.WithFields(logrus.Fields{"file": in.FileName, "session": in.Session, "size": len(data)})
	log.Info("[analysis][handler] upload received")

	result, err := h.usecase.Analyze(c.Request.Context(), in)
	if err != nil {
		log.WithError(err).Warn("[analysis][handler] analysis failed")
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary      Get an analysis
// @Tags         analyses
// @Produce      json
// @Param        id   path      string  true  "Analysis ID"
// @Success      200  {object}  entities.AnalysisResult
// @Failure      404  {object}  pkg.HTTPError
// @Router       /analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	result, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAnalysisID), errors.Is(err, usecase.ErrInvalidAnalysisType),
		errors.Is(err, usecase.ErrInvalidFileName), errors.Is(err, usecase.ErrEmptyDocument):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Only plain text editais can be analyzed", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrTextExtractionFailed):
		return pkg.NewDomainErrorSimple("TEXT_EXTRACTION_FAILED", "Could not extract enough text from the file", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStaleAnalysis):
		return pkg.NewDomainErrorSimple("ANALYSIS_SUPERSEDED", "A newer upload replaced this analysis", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnalysisNotFound):
		return pkg.NewDomainErrorSimple("ANALYSIS_NOT_FOUND", "Analysis not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
