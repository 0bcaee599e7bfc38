package listing

import (
	"fmt"
	"strings"
)

// Kind identifies one micro-marketplace dataset.
type Kind string

const (
	KindFood       Kind = "food"
	KindJobs       Kind = "jobs"
	KindRealEstate Kind = "realestate"
	KindVehicles   Kind = "vehicles"
	KindMarket     Kind = "market"
	KindServices   Kind = "services"
)

func Kinds() []Kind {
	return []Kind{KindFood, KindJobs, KindRealEstate, KindVehicles, KindMarket, KindServices}
}

func ParseKind(value string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	for _, kind := range Kinds() {
		if string(kind) == normalized {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unsupported dataset: %s", value)
}

// Status is the canonical availability of a listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusResolved  Status = "resolved"
)

func (s Status) Available() bool {
	return s == StatusAvailable
}

const (
	CategoryAll   = "all"
	CategoryOther = "other"
)

// Record is the normalized listing shared by every dataset. Every string field
// carries a value after assembly; PhoneDigits is derived and may be empty.
type Record struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	Title         string            `json:"title"`
	PriceText     string            `json:"price"`
	PriceValue    int64             `json:"priceValue"`
	Location      string            `json:"location"`
	Phone         string            `json:"phone"`
	PhoneDigits   string            `json:"phoneDigits"`
	ImageURL      string            `json:"imageUrl"`
	Category      string            `json:"category"`
	CategoryLabel string            `json:"categoryLabel"`
	Status        Status            `json:"status"`
	Description   string            `json:"description"`
	Seller        string            `json:"seller"`
	Verified      bool              `json:"verified"`
	Featured      bool              `json:"featured"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// Attribute returns a dataset-specific value such as "area" or "salary".
func (r Record) Attribute(name string) string {
	return r.Attributes[name]
}

// TelLink is the telephone deep link, empty when the phone has no digits.
func (r Record) TelLink() string {
	if r.PhoneDigits == "" {
		return ""
	}
	return "tel:" + r.PhoneDigits
}

// ChatLink is the Zalo chat deep link keyed by phone number.
func (r Record) ChatLink() string {
	if r.PhoneDigits == "" {
		return ""
	}
	return "https://zalo.me/" + r.PhoneDigits
}
