package afield

import (
	"strconv"

	"animal-savior/awsave/abuf"
)

type (
	// Choice is one labeled value of a closed set.
	Choice struct {
		Value uint64
		Label string
	}

	// ChoiceField is a Field whose raw value is usually one of a known
	// set. Raw values outside the set are tolerated: Choice simply
	// reports no match and the numeric value stays the reportable form.
	ChoiceField struct {
		Field
		choices []Choice
	}
)

func NewChoiceField(buf *abuf.Buffer, offset int, typ abuf.NumType, choices []Choice) *ChoiceField {
	return &ChoiceField{
		Field:   *NewField(buf, offset, typ),
		choices: choices,
	}
}

// Choice looks the current raw value up in the label table. The second
// return is false when the stored value has no label; callers must
// handle that case, it is not an error.
func (f *ChoiceField) Choice() (Choice, bool) {
	for _, c := range f.choices {
		if c.Value == f.Value() {
			return c, true
		}
	}
	return Choice{}, false
}

// SetChoice writes the raw value mapped to c.
func (f *ChoiceField) SetChoice(c Choice) error {
	return f.Set(c.Value)
}

func (f *ChoiceField) Choices() []Choice {
	return f.choices
}

// String reports the label when the value is known, the raw number
// otherwise.
func (f *ChoiceField) String() string {
	if c, ok := f.Choice(); ok {
		return c.Label
	}
	return strconv.FormatUint(f.Value(), 10)
}
