package util

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SubmissionKey derives the dedup key for a (campaign, course,
// instructor) triple: "fb-<campaign>-<course>-<instructor>",
// lower-cased, each run of whitespace replaced by a single hyphen in
// place. Leading or trailing whitespace in a component becomes a
// hyphen rather than vanishing, so " DBMS" and "DBMS" stay distinct
// keys. Two triples that normalize identically are the same key.
func SubmissionKey(campaignID, course, instructor string) string {
	key := strings.ToLower("fb-" + campaignID + "-" + course + "-" + instructor)
	return whitespaceRun.ReplaceAllString(key, "-")
}

// CampaignKeyPrefix is the normalized prefix shared by every
// submission key of one campaign; used to cascade counter removal
// when the campaign is deleted.
func CampaignKeyPrefix(campaignID string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower("fb-"+campaignID), "-") + "-"
}
