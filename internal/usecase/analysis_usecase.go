package usecase

import (
	"context"
	"errors"
	"fmt"
	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/extraction"
	"precifica_ti/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultAnalysisSession = "default"

var (
	ErrAnalysisNotFound     = errors.New("analysis not found")
	ErrInvalidAnalysisID    = errors.New("invalid analysis id")
	ErrInvalidAnalysisType  = errors.New("invalid analysis type")
	ErrEmptyDocument        = errors.New("empty document")
	ErrInvalidFileName      = errors.New("invalid file name")
	ErrStaleAnalysis        = errors.New("analysis superseded by a newer request")
	ErrUnsupportedFormat    = interfaces.ErrUnsupportedDocumentFormat
	ErrTextExtractionFailed = interfaces.ErrTextExtractionFailed
)

type AnalyzeInput struct {
	Session      string
	FileName     string
	ContentType  string
	Data         []byte
	AnalysisType entities.AnalysisType
}

// IAnalysisUseCase analyzes uploaded editais and serves stored results.
type IAnalysisUseCase interface {
	Analyze(ctx context.Context, in AnalyzeInput) (entities.AnalysisResult, error)
	GetByID(ctx context.Context, id string) (entities.AnalysisResult, error)
}

type AnalysisUseCase struct {
	repo      interfaces.IAnalysisRepository
	storage   interfaces.IDocumentStorage
	extractor interfaces.ITextExtractor
	analyzer  *extraction.Analyzer
}

var _ IAnalysisUseCase = (*AnalysisUseCase)(nil)

// NewAnalysisUseCase wires the analysis flow. storage may be nil, in which
// case uploads are analyzed without being kept.
func NewAnalysisUseCase(repo interfaces.IAnalysisRepository, storage interfaces.IDocumentStorage, extractor interfaces.ITextExtractor, analyzer *extraction.Analyzer) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo, storage: storage, extractor: extractor, analyzer: analyzer}
}

// Analyze decodes, analyzes and stores one upload. Every call takes a new
// request id for its session; if a newer request started before this one
// finished, the result is dropped with ErrStaleAnalysis.
func (u *AnalysisUseCase) Analyze(ctx context.Context, in AnalyzeInput) (entities.AnalysisResult, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	if in.FileName == "" {
		return entities.AnalysisResult{}, ErrInvalidFileName
	}
	if len(in.Data) == 0 {
		return entities.AnalysisResult{}, ErrEmptyDocument
	}
	if in.AnalysisType == "" {
		in.AnalysisType = entities.AnalysisTypeGeneral
	}
	if !in.AnalysisType.Valid() {
		return entities.AnalysisResult{}, ErrInvalidAnalysisType
	}
	session := strings.TrimSpace(in.Session)
	if session == "" {
		session = defaultAnalysisSession
	}
	log := logrus.WithFields(logrus.Fields{"session": session, "file": in.FileName, "type": in.AnalysisType})

	requestID, err := u.repo.NextRequestID(ctx, session)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("next analysis request id: %w", err)
	}
	log = log.WithField("request_id", requestID)
	log.Info("[analysis][usecase] analysis started")

	text, err := u.extractor.Extract(in.FileName, in.Data)
	if err != nil {
		log.WithError(err).Warn("[analysis][usecase] text extraction failed")
		return entities.AnalysisResult{}, err
	}

	result := u.analyzer.Analyze(text, in.AnalysisType, in.FileName)
	result.ID = fmt.Sprintf("%s-%d", result.ID, requestID)
	result.RequestID = requestID
	result.Session = session

	latest, err := u.repo.LatestRequestID(ctx, session)
	if err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("latest analysis request id: %w", err)
	}
	if latest != requestID {
		log.WithField("latest_request_id", latest).Warn("[analysis][usecase] discarding stale analysis")
		return entities.AnalysisResult{}, ErrStaleAnalysis
	}

	// Only uploads that produced a current result are kept.
	if u.storage != nil {
		result.StoredObject, err = u.storage.Upload(ctx, in.FileName, in.ContentType, in.Data)
		if err != nil {
			log.WithError(err).Error("[analysis][usecase] upload failed")
			return entities.AnalysisResult{}, fmt.Errorf("store document: %w", err)
		}
	}

	if err := u.repo.Save(ctx, result); err != nil {
		u.discardObject(ctx, log, result.StoredObject)
		return entities.AnalysisResult{}, err
	}
	log.WithFields(logrus.Fields{
		"analysis_id": result.ID,
		"products":    len(result.Products),
		"documents":   len(result.Documents),
		"confidence":  result.Confidence,
	}).Info("[analysis][usecase] analysis stored")
	return result, nil
}

func (u *AnalysisUseCase) discardObject(ctx context.Context, log *logrus.Entry, object string) {
	if u.storage == nil || object == "" {
		return
	}
	if err := u.storage.Delete(ctx, object); err != nil {
		log.WithError(err).WithField("object", object).Warn("[analysis][usecase] orphaned upload not removed")
	}
}

func (u *AnalysisUseCase) GetByID(ctx context.Context, id string) (entities.AnalysisResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AnalysisResult{}, ErrInvalidAnalysisID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	if r.ID == "" {
		return entities.AnalysisResult{}, ErrAnalysisNotFound
	}
	return r, nil
}
