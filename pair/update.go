package pair

import (
	"strconv"
	"strings"
	"time"
)

// Field names an editable Pair field.
type Field string

const (
	FieldName       Field = "name"
	FieldWeeklyBias Field = "weeklyBias"
	FieldDailyBias  Field = "dailyBias"
	FieldNotes      Field = "notes"
	FieldIsEditing  Field = "isEditing"
)

var Fields = []Field{FieldName, FieldWeeklyBias, FieldDailyBias, FieldNotes, FieldIsEditing}

func ParseField(s string) (Field, bool) {
	s = strings.TrimSpace(s)
	for _, f := range Fields {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Apply sets one field from user text. Typing into the name field does
// not end editing; only an explicit isEditing=false commit does, and only
// when the name is not blank. Unparseable values are no-ops.
func Apply(p Pair, f Field, value string, now time.Time) Pair {
	switch f {
	case FieldName:
		p.Name = value
	case FieldWeeklyBias, FieldDailyBias:
		b, ok := ParseBias(value)
		if !ok {
			return p
		}
		tf := Weekly
		if f == FieldDailyBias {
			tf = Daily
		}
		return SetBias(p, tf, b, now)
	case FieldNotes:
		p.Notes = value
	case FieldIsEditing:
		editing, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return p
		}
		if editing {
			return StartEditing(p)
		}
		return CommitName(p, p.Name)
	}
	return p
}
