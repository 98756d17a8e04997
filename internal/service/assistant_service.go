package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type assistantGateway interface {
	CompareIEPs(ctx context.Context, oldText, newText string) (*models.IepComparison, error)
	GenerateLetter(ctx context.Context, letterType, details string) (string, error)
	ReviseLetter(ctx context.Context, current, instruction string) (string, error)
	SimulateMeeting(ctx context.Context, userMessage, childContext string) (string, error)
	LegalAnswer(ctx context.Context, question string) (string, error)
}

// AssistantService fronts the non-persisting AI operations: comparison,
// letter drafting, meeting practice and legal FAQ.
type AssistantService struct {
	gateway   assistantGateway
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssistantService constructs the service.
func NewAssistantService(gateway assistantGateway, validate *validator.Validate, logger *zap.Logger) *AssistantService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{gateway: gateway, validator: validate, logger: logger}
}

// CompareRequest holds two IEP versions to contrast.
type CompareRequest struct {
	OldText string `json:"old_text" validate:"required"`
	NewText string `json:"new_text" validate:"required"`
}

// GenerateLetterRequest asks for a fresh letter draft.
type GenerateLetterRequest struct {
	Type    string `json:"type" validate:"required"`
	Details string `json:"details" validate:"required"`
}

// ReviseLetterRequest asks for a rewrite of an existing draft.
type ReviseLetterRequest struct {
	Content     string `json:"content" validate:"required"`
	Instruction string `json:"instruction" validate:"required"`
}

// MeetingRequest is one parent utterance in the mock meeting.
type MeetingRequest struct {
	Message      string `json:"message" validate:"required"`
	ChildContext string `json:"child_context"`
}

// LegalRequest is a plain-English IDEA question.
type LegalRequest struct {
	Question string `json:"question" validate:"required"`
}

// Compare contrasts two IEP versions.
func (s *AssistantService) Compare(ctx context.Context, req CompareRequest) (*models.IepComparison, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "both IEP versions are required")
	}
	return s.gateway.CompareIEPs(ctx, req.OldText, req.NewText)
}

// GenerateLetter drafts a new advocacy letter.
func (s *AssistantService) GenerateLetter(ctx context.Context, req GenerateLetterRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "letter type and details are required")
	}
	return s.gateway.GenerateLetter(ctx, req.Type, req.Details)
}

// ReviseLetter rewrites an existing letter.
func (s *AssistantService) ReviseLetter(ctx context.Context, req ReviseLetterRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "letter content and instruction are required")
	}
	return s.gateway.ReviseLetter(ctx, req.Content, req.Instruction)
}

// SimulateMeeting plays one turn of a mock IEP team meeting.
func (s *AssistantService) SimulateMeeting(ctx context.Context, req MeetingRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "message is required")
	}
	return s.gateway.SimulateMeeting(ctx, req.Message, req.ChildContext)
}

// LegalAnswer answers an IDEA question.
func (s *AssistantService) LegalAnswer(ctx context.Context, req LegalRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "question is required")
	}
	return s.gateway.LegalAnswer(ctx, req.Question)
}
