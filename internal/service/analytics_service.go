package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/util"
	"edu_feedback_backend/pkg/tracing"
)

// FieldStats is the {average, count} pair for one filter.
type FieldStats struct {
	Average string `json:"average"`
	Count   int    `json:"count"`
}

// AnalyticsService is the pure read side: it aggregates the ledgers
// on demand and never mutates state. The one side effect it owns is
// handing a finished CSV export to the report storage.
type AnalyticsService struct {
	FeedbackRepo *repository.FeedbackRepository
	CampaignRepo *repository.CampaignRepository
	Reports      ReportStorage
}

func NewAnalyticsService(
	feedbackRepo *repository.FeedbackRepository,
	campaignRepo *repository.CampaignRepository,
	reports ReportStorage,
) *AnalyticsService {
	return &AnalyticsService{
		FeedbackRepo: feedbackRepo,
		CampaignRepo: campaignRepo,
		Reports:      reports,
	}
}

// Average returns the mean headline rating to one decimal place.
// Zero or non-numeric ratings are skipped; an empty or all-invalid
// input yields "0" rather than NaN or an error.
func Average(feedbacks []model.Feedback) string {
	sum, n := 0.0, 0
	for _, f := range feedbacks {
		if f.Rating != 0 {
			sum += f.Rating
			n++
		}
	}
	if n == 0 {
		return "0"
	}
	// Round half away from zero, so 3.25 reports as "3.3"; %.1f alone
	// rounds half to even and would report "3.2".
	return fmt.Sprintf("%.1f", math.Round(sum/float64(n)*10)/10)
}

func (s *AnalyticsService) statsBy(match func(model.Feedback) bool) FieldStats {
	var filtered []model.Feedback
	for _, f := range s.FeedbackRepo.All() {
		if match(f) {
			filtered = append(filtered, f)
		}
	}
	return FieldStats{Average: Average(filtered), Count: len(filtered)}
}

func (s *AnalyticsService) StatsByCourse(course string) FieldStats {
	return s.statsBy(func(f model.Feedback) bool { return f.Course == course })
}

func (s *AnalyticsService) StatsByInstructor(instructor string) FieldStats {
	return s.statsBy(func(f model.Feedback) bool { return f.Instructor == instructor })
}

// CourseStats fans out over the static catalog, keyed by course code.
func (s *AnalyticsService) CourseStats() map[string]FieldStats {
	out := make(map[string]FieldStats, len(util.Courses()))
	for _, c := range util.Courses() {
		out[c] = s.StatsByCourse(c)
	}
	return out
}

func (s *AnalyticsService) InstructorStats() map[string]FieldStats {
	out := make(map[string]FieldStats, len(util.Instructors()))
	for _, ins := range util.Instructors() {
		out[ins] = s.StatsByInstructor(ins)
	}
	return out
}

func (s *AnalyticsService) TotalSubmissions() int {
	return s.FeedbackRepo.TotalSubmissions()
}

func (s *AnalyticsService) TotalCampaigns() int {
	return s.CampaignRepo.Count()
}

// RecentRemarks returns the newest n feedback entries carrying a
// written remark.
func (s *AnalyticsService) RecentRemarks(n int) []model.Feedback {
	var out []model.Feedback
	for _, f := range s.FeedbackRepo.All() {
		if f.Remarks != "" {
			out = append(out, f)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

var exportHeaders = []string{"id", "course", "instructor", "rating", "remarks", "timestamp"}

// ExportCSV renders the whole ledger as delimited text and hands it
// to the report storage. The header row is the fixed column set plus
// the union of dynamic field ids observed across records, joined
// bare; every data value is double-quoted with internal quotes
// doubled. An empty ledger refuses the export and produces no file.
func (s *AnalyticsService) ExportCSV(ctx context.Context) (string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "analytics.export_csv")
	defer span.End()

	feedbacks := s.FeedbackRepo.All()
	if len(feedbacks) == 0 {
		return "", util.ErrNoFeedbackData
	}

	headers := append([]string(nil), exportHeaders...)
	seen := make(map[string]bool)
	for _, f := range feedbacks {
		keys := make([]string, 0, len(f.DynamicRatings))
		for k := range f.DynamicRatings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	rows := make([]string, 0, len(feedbacks)+1)
	rows = append(rows, strings.Join(headers, ","))
	for _, f := range feedbacks {
		row := make([]string, 0, len(headers))
		for _, h := range headers {
			row = append(row, exportValue(f, h))
		}
		rows = append(rows, csvRow(row))
	}

	filename := fmt.Sprintf("feedback_report_%s.csv", time.Now().Format(time.DateOnly))
	if _, err := s.Reports.Upload(ctx, filename, []byte(strings.Join(rows, "\n")), "text/csv"); err != nil {
		return "", err
	}
	return filename, nil
}

func exportValue(f model.Feedback, header string) string {
	switch header {
	case "id":
		return f.ID
	case "course":
		return f.Course
	case "instructor":
		return f.Instructor
	case "rating":
		return strconv.FormatFloat(f.Rating, 'f', -1, 64)
	case "remarks":
		return f.Remarks
	case "timestamp":
		return f.Timestamp.Format(time.RFC3339)
	}
	if ans, ok := f.DynamicRatings[header]; ok {
		return ans.String()
	}
	return ""
}

// csvRow quotes every data value unconditionally, doubling internal
// quotes; the consumer's format, stricter than encoding/csv's
// quote-when-needed. Header rows stay bare.
func csvRow(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
