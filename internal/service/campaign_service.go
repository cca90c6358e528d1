package service

import (
	"fmt"
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/util"
	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	CampaignRepo *repository.CampaignRepository
	FeedbackRepo *repository.FeedbackRepository
	Notifier     *NotificationService
}

func NewCampaignService(
	campaignRepo *repository.CampaignRepository,
	feedbackRepo *repository.FeedbackRepository,
	notifier *NotificationService,
) *CampaignService {
	return &CampaignService{
		CampaignRepo: campaignRepo,
		FeedbackRepo: feedbackRepo,
		Notifier:     notifier,
	}
}

// Create publishes a new campaign and returns its id. Campaigns are
// always published at creation; a new_campaign notification announces
// it to students.
func (s *CampaignService) Create(data model.Campaign) (string, error) {
	if len(data.Fields) == 0 {
		return "", util.ErrNoFields
	}
	campaign := data
	campaign.ID = "form-" + uuid.New().String()
	campaign.CreatedAt = time.Now()
	campaign.Published = true

	if err := s.CampaignRepo.Prepend(campaign); err != nil {
		logger.Log.Warn("campaign persisted in memory only", zap.String("campaign", campaign.ID), zap.Error(err))
	}
	monitoring.CampaignsCreated.Inc()

	s.Notifier.Emit(model.NotifNewCampaign,
		fmt.Sprintf("New feedback form published: %q", campaign.Title),
		map[string]string{"campaignId": campaign.ID})

	return campaign.ID, nil
}

// Delete removes the campaign and cascades to its dedup counters.
// Historical feedback keeps its campaign linkage; orphaned references
// are tolerated.
func (s *CampaignService) Delete(id string) error {
	if err := s.CampaignRepo.Delete(id); err != nil {
		return err
	}
	return s.FeedbackRepo.DeleteCountsByPrefix(util.CampaignKeyPrefix(id))
}

func (s *CampaignService) Find(id string) (*model.Campaign, error) {
	c, ok := s.CampaignRepo.Find(id)
	if !ok {
		return nil, util.ErrCampaignNotFound
	}
	return c, nil
}

// Published lists campaigns with published = true, newest first.
func (s *CampaignService) Published() []model.Campaign {
	var out []model.Campaign
	for _, c := range s.CampaignRepo.All() {
		if c.Published {
			out = append(out, c)
		}
	}
	return out
}

// Active lists published campaigns whose deadline has not passed as
// of the given date. Campaigns without a parseable deadline never
// expire. Comparison is by calendar date; time of day is ignored.
func (s *CampaignService) Active(asOf time.Time) []model.Campaign {
	var out []model.Campaign
	for _, c := range s.Published() {
		d, ok := c.DeadlineDate()
		if !ok || !d.Before(dateOf(asOf)) {
			out = append(out, c)
		}
	}
	return out
}

// Expired lists published campaigns whose deadline has passed.
// Active and Expired partition Published for any reference date.
func (s *CampaignService) Expired(asOf time.Time) []model.Campaign {
	var out []model.Campaign
	for _, c := range s.Published() {
		if d, ok := c.DeadlineDate(); ok && d.Before(dateOf(asOf)) {
			out = append(out, c)
		}
	}
	return out
}

// DeadlineSoon lists published campaigns whose deadline falls within
// the next 48 hours; feeds the reminder alerts shown to students.
func (s *CampaignService) DeadlineSoon(asOf time.Time) []model.Campaign {
	var out []model.Campaign
	cutoff := dateOf(asOf).Add(48 * time.Hour)
	for _, c := range s.Published() {
		d, ok := c.DeadlineDate()
		if ok && !d.Before(dateOf(asOf)) && !d.After(cutoff) {
			out = append(out, c)
		}
	}
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
