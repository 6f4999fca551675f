package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWeddingForm() WeddingForm {
	return WeddingForm{
		BrideName:       "Jane",
		GroomName:       "John",
		WeddingDate:     "2026-12-19",
		CeremonyType:    "church",
		CeremonyVenue:   "Se Cathedral",
		CeremonyAddress: "Old Goa",
		CeremonyTime:    TimeOfDay{Hour: "4", Minute: "00", Period: "PM"},
		ContactEmail:    "jane@example.com",
		MaxGuests:       150,
	}
}

func TestWeddingForm_Request(t *testing.T) {
	req, err := validWeddingForm().Request()
	require.NoError(t, err)

	assert.Equal(t, "jane-john", req.Slug)
	assert.Equal(t, "04:00 PM", req.CeremonyTime)
	assert.Equal(t, "", req.ReceptionTime)
}

func TestWeddingForm_SlugIgnoresPunctuation(t *testing.T) {
	f := validWeddingForm()
	f.BrideName = "  Jane!! "
	f.GroomName = " John?"
	assert.Equal(t, "jane-john", f.Slug())
}

func TestWeddingForm_Validation(t *testing.T) {
	cases := map[string]func(*WeddingForm){
		"brideName":       func(f *WeddingForm) { f.BrideName = "" },
		"weddingDate":     func(f *WeddingForm) { f.WeddingDate = "19/12/2026" },
		"ceremonyVenue":   func(f *WeddingForm) { f.CeremonyVenue = " " },
		"ceremonyAddress": func(f *WeddingForm) { f.CeremonyAddress = "" },
		"ceremonyTime":    func(f *WeddingForm) { f.CeremonyTime = TimeOfDay{Hour: "4", Period: "PM"} },
		"receptionTime":   func(f *WeddingForm) { f.ReceptionTime = TimeOfDay{Minute: "30"} },
		"contactEmail":    func(f *WeddingForm) { f.ContactEmail = "jane" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			f := validWeddingForm()
			mutate(&f)
			requireFieldError(t, f.Validate(), field)
		})
	}
}
