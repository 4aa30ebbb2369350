package order

import (
	"math"
	"strings"

	"trackview/internal/pkg/errs"
)

// Draft is an order that has not been submitted to the order service yet.
// The service assigns the identifier, status and creation time.
type Draft struct {
	SenderName    string
	RecipientName string
	AddressFrom   string
	AddressTo     string
	Parcel        Parcel
}

// NewDraft validates what the order service would otherwise reject: both
// addresses are required, parcel weight and dimensions must be positive and
// urgency must be standard or express.
func NewDraft(senderName, recipientName, addressFrom, addressTo string, parcel Parcel) (Draft, error) {
	addressFrom = strings.TrimSpace(addressFrom)
	if addressFrom == "" {
		return Draft{}, errs.NewValueIsRequiredError("addressFrom")
	}
	addressTo = strings.TrimSpace(addressTo)
	if addressTo == "" {
		return Draft{}, errs.NewValueIsRequiredError("addressTo")
	}

	measures := []struct {
		name  string
		value float64
	}{
		{"weight", parcel.Weight},
		{"length", parcel.Length},
		{"width", parcel.Width},
		{"height", parcel.Height},
	}
	for _, m := range measures {
		if !(m.value > 0) || math.IsInf(m.value, 1) {
			return Draft{}, errs.NewValueIsOutOfRangeError(m.name, m.value, "> 0", "finite")
		}
	}

	if parcel.Urgency != UrgencyStandard && parcel.Urgency != UrgencyExpress {
		return Draft{}, errs.NewValueIsOutOfRangeError("urgency", parcel.Urgency, UrgencyStandard, UrgencyExpress)
	}

	return Draft{
		SenderName:    strings.TrimSpace(senderName),
		RecipientName: strings.TrimSpace(recipientName),
		AddressFrom:   addressFrom,
		AddressTo:     addressTo,
		Parcel:        parcel,
	}, nil
}
