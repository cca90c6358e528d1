package model

import "time"

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRating   FieldType = "rating"
	FieldYesNo    FieldType = "yesno"
	FieldDate     FieldType = "date"
)

// Field is one entry in a campaign's ordered form schema. Options are
// present for select and rating fields.
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Campaign is a published feedback form. Deadline is a calendar date
// in 2006-01-02 form; empty means no deadline.
type Campaign struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Deadline    string    `json:"deadline,omitempty"`
	Published   bool      `json:"published"`
	Fields      []Field   `json:"fields"`
}

// DeadlineDate parses the campaign deadline. ok is false when the
// campaign has no deadline or the stored value does not parse.
func (c *Campaign) DeadlineDate() (time.Time, bool) {
	if c.Deadline == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(time.DateOnly, c.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Field returns the schema field with the given id.
func (c *Campaign) Field(id string) (Field, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
