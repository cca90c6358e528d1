package service

import (
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/util"
	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionInput carries one evaluation. Answers are keyed by field
// id and validated against the campaign's schema; Rating may be zero,
// in which case it is derived from the answers.
type SubmissionInput struct {
	Course     string
	Instructor string
	Rating     float64
	Answers    map[string]model.Answer
	Remarks    string
}

type SubmissionService struct {
	FeedbackRepo *repository.FeedbackRepository
	SessionRepo  *repository.SessionRepository
}

func NewSubmissionService(feedbackRepo *repository.FeedbackRepository, sessionRepo *repository.SessionRepository) *SubmissionService {
	return &SubmissionService{
		FeedbackRepo: feedbackRepo,
		SessionRepo:  sessionRepo,
	}
}

// Key derives the dedup key for a (campaign, course, instructor)
// triple; see util.SubmissionKey for the normalization rules.
func (s *SubmissionService) Key(campaignID, course, instructor string) string {
	return util.SubmissionKey(campaignID, course, instructor)
}

// AlreadySubmitted reports whether this session's student has already
// used the key. Callers must check it before Submit: Submit itself
// accepts repeats and counts every one.
func (s *SubmissionService) AlreadySubmitted(sess *model.Session, key string) bool {
	return sess.HasSubmitted(key)
}

// Submit validates the answers against the campaign schema, bumps
// the aggregate count for key, appends the feedback record and adds
// the key to the session's submitted set. It does not reject a key
// the student already used; that check belongs to the caller via
// AlreadySubmitted.
func (s *SubmissionService) Submit(sess *model.Session, campaign *model.Campaign, key string, input SubmissionInput) error {
	if err := validateAnswers(campaign, input); err != nil {
		return err
	}

	if err := s.FeedbackRepo.IncrementCount(key); err != nil {
		logger.Log.Warn("submission count persisted in memory only", zap.String("key", key), zap.Error(err))
	}

	fb := model.Feedback{
		ID:             "fb-" + uuid.New().String(),
		Course:         input.Course,
		Instructor:     input.Instructor,
		Rating:         deriveRating(campaign, input),
		DynamicRatings: input.Answers,
		Remarks:        input.Remarks,
		Timestamp:      time.Now(),
	}
	if err := s.FeedbackRepo.Prepend(fb); err != nil {
		logger.Log.Warn("feedback persisted in memory only", zap.String("feedback", fb.ID), zap.Error(err))
	}

	sess.MarkSubmitted(key)
	if err := s.SessionRepo.Save(sess); err != nil {
		logger.Log.Warn("session persisted in memory only", zap.Error(err))
	}

	monitoring.SubmissionsAccepted.Inc()
	return nil
}

// validateAnswers enforces the only submission-time checks the engine
// owns: every required schema field has a non-empty answer, and a
// schemaless submission carries a non-zero headline rating. Everything
// else is the presentation layer's problem.
func validateAnswers(campaign *model.Campaign, input SubmissionInput) error {
	if campaign == nil || len(campaign.Fields) == 0 {
		if len(input.Answers) == 0 && input.Rating == 0 {
			return util.ErrMissingRatings
		}
		return nil
	}
	for _, f := range campaign.Fields {
		if !f.Required {
			continue
		}
		ans, ok := input.Answers[f.ID]
		if !ok || ans.Zero() {
			return util.ErrMissingRatings
		}
	}
	return nil
}

// deriveRating resolves the headline rating: the explicit one when
// given, otherwise the first numeric answer in campaign field-schema
// order. With several rating-type fields the choice is ambiguous by
// design and simply takes the schema's first.
func deriveRating(campaign *model.Campaign, input SubmissionInput) float64 {
	if input.Rating != 0 {
		return input.Rating
	}
	if campaign == nil {
		return 0
	}
	for _, f := range campaign.Fields {
		if ans, ok := input.Answers[f.ID]; ok && ans.Kind == model.AnswerNumber && ans.Number != 0 {
			return ans.Number
		}
	}
	return 0
}
