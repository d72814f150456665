package awsave

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"animal-savior/awsave/afield"
)

// MaxStamps is the stamp array capacity; the in-game UI caps there too.
const MaxStamps = 64

type (
	// Stamp is one minimap marker: a pixel position on the map plus an
	// icon from the stamp palette.
	Stamp struct {
		X    *afield.Field
		Y    *afield.Field
		Icon *afield.ChoiceField
	}

	// Stamps manages the minimap marker list along with the icon
	// currently selected in the stamp UI.
	Stamps struct {
		*afield.RecordList[*Stamp]
		SelectedIcon *afield.ChoiceField
	}
)

// mustSet is for writes whose value is already known to fit the field;
// a failure there means the schema itself is wrong.
func mustSet(f *afield.Field, v uint64) {
	if err := f.Set(v); err != nil {
		panic(err)
	}
}

func (s *Stamp) Clear() {
	mustSet(s.X, 0)
	mustSet(s.Y, 0)
	mustSet(&s.Icon.Field, 0)
}

func (s *Stamp) CopyFrom(other *Stamp) {
	mustSet(s.X, other.X.Value())
	mustSet(s.Y, other.Y.Value())
	mustSet(&s.Icon.Field, other.Icon.Value())
}

func (s *Stamp) String() string {
	return fmt.Sprintf("%s at (%d, %d)", s.Icon, s.X.Value(), s.Y.Value())
}

// Add places a new stamp at map pixel (x, y).
func (s *Stamps) Add(x, y uint64, icon afield.Choice) (int, error) {
	if x > math.MaxUint16 || y > math.MaxUint16 {
		return 0, errors.Wrapf(afield.ErrRange,
			"Stamps.Add error: position (%d, %d) does not fit the stored u16s", x, y)
	}
	idx, err := s.Append(func(st *Stamp) {
		mustSet(st.X, x)
		mustSet(st.Y, y)
		mustSet(&st.Icon.Field, icon.Value)
	})
	if err != nil {
		return 0, errors.Wrap(err, "Stamps.Add error")
	}
	return idx, nil
}
