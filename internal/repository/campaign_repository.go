package repository

import (
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/store"
)

// CampaignRepository owns the campaign collection, newest first.
type CampaignRepository struct {
	store     *store.Store
	campaigns []model.Campaign
}

func NewCampaignRepository(st *store.Store) *CampaignRepository {
	r := &CampaignRepository{store: st}
	st.Load(store.SlotCampaigns, &r.campaigns, func() { r.campaigns = nil })
	if len(r.campaigns) == 0 {
		r.campaigns = seedCampaigns(time.Now())
		r.persist()
	}
	return r
}

func seedRatingFields() []model.Field {
	return []model.Field{
		{ID: "f1", Label: "How would you rate the overall quality of the course?", Type: model.FieldRating, Required: true},
		{ID: "f2", Label: "Was the course content clear and easy to understand?", Type: model.FieldRating, Required: true},
		{ID: "f3", Label: "How effective was the instructor in explaining the topics?", Type: model.FieldRating, Required: true},
		{ID: "f4", Label: "Did this course improve your knowledge or skills in the subject?", Type: model.FieldRating, Required: true},
		{ID: "f5", Label: "What suggestions do you have to improve this course? (Rate the current state)", Type: model.FieldRating, Required: true},
	}
}

// seedCampaigns installs one active and one expired campaign so a
// fresh deployment has data out of the box.
func seedCampaigns(now time.Time) []model.Campaign {
	return []model.Campaign{
		{
			ID:          "campaign-seed-1",
			Title:       "Mid-Semester Course Feedback",
			Description: "Provide feedback on course quality and instructor performance.",
			CreatedAt:   now.AddDate(0, 0, -2),
			Deadline:    now.AddDate(0, 0, 7).Format(time.DateOnly),
			Published:   true,
			Fields:      seedRatingFields(),
		},
		{
			ID:          "campaign-seed-2",
			Title:       "End-Semester Evaluation",
			Description: "Comprehensive evaluation of the subject and instructor.",
			CreatedAt:   now.AddDate(0, 0, -5),
			Deadline:    now.AddDate(0, 0, -2).Format(time.DateOnly),
			Published:   true,
			Fields:      seedRatingFields(),
		},
	}
}

func (r *CampaignRepository) All() []model.Campaign {
	out := make([]model.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out
}

func (r *CampaignRepository) Find(id string) (*model.Campaign, bool) {
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			c := r.campaigns[i]
			return &c, true
		}
	}
	return nil, false
}

func (r *CampaignRepository) Prepend(c model.Campaign) error {
	r.campaigns = append([]model.Campaign{c}, r.campaigns...)
	return r.persist()
}

func (r *CampaignRepository) Delete(id string) error {
	kept := r.campaigns[:0]
	for _, c := range r.campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.campaigns = kept
	return r.persist()
}

func (r *CampaignRepository) Count() int {
	return len(r.campaigns)
}

func (r *CampaignRepository) persist() error {
	return r.store.Save(store.SlotCampaigns, r.campaigns)
}
