package extract

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// CompletionClient is the language-model call the processor depends on.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service turns a raw transcript into an ExtractedMeeting via the LLM.
type Service struct {
	llm      CompletionClient
	parser   *Parser
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the transcript processor.
func NewService(llm CompletionClient, logger *zap.Logger) *Service {
	return &Service{
		llm:      llm,
		parser:   NewParser(),
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Process sends the transcript through the extraction prompt and parses the
// reply. A partially recoverable reply is returned with its Missing sections
// recorded rather than failing; only an unusable reply is an error.
func (s *Service) Process(ctx context.Context, transcript string, knownPeople, meetingTypes []string) (*entities.ExtractedMeeting, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.ErrExtraction(entities.ErrEmptyTranscript)
	}

	prompt := buildPrompt(transcript, knownPeople, meetingTypes, s.now())

	content, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, apperrors.ErrExtraction(err)
	}

	meeting, err := s.parser.Parse(content)
	if err != nil {
		return nil, apperrors.ErrExtraction(err)
	}

	if err := s.validate.Struct(meeting); err != nil {
		// Partial result policy: a missing summary degrades, it does not fail.
		if s.logger != nil {
			s.logger.Warn("⚠️ extraction returned an incomplete record",
				zap.Strings("missing", meeting.Missing),
			)
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ extracted structured data from transcript",
			zap.Strings("recovered", meeting.Recovered),
			zap.Strings("missing", meeting.Missing),
			zap.Int("attendees", len(meeting.Attendees)),
			zap.Int("action_items", len(meeting.ActionItems)),
			zap.Int("key_decisions", len(meeting.KeyDecisions)),
		)
	}

	return meeting, nil
}
