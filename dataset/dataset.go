// Package dataset declares the six listing datasets. Each table owns its
// column synonyms, keyword rules, price display and search settings; rules
// are deliberately kept per dataset.
package dataset

import (
	"fmt"

	"choque/importer"
	"choque/listing"
	"choque/search"
)

// DefaultImage is shown for listings without a picture.
const DefaultImage = "https://placehold.co/600x400?text=Ch%E1%BB%A3+Qu%C3%AA"

// Source spreadsheets are published per tab as CSV. The compiled-in ids are
// only defaults; deployments point datasets.<kind> at their own sheets.
const publishedSheet = "2PACX-1vChoQueListingsPublished"

const (
	defaultTitle       = "Chưa có tiêu đề"
	defaultPrice       = "Liên hệ"
	defaultPending     = "Đang cập nhật"
	defaultDescription = "Chưa có mô tả"
	defaultSeller      = "Ẩn danh"
	flagUnset          = "false"
)

// Dataset bundles everything needed to ingest and browse one kind.
type Dataset struct {
	Kind    listing.Kind
	Label   string
	Schema  importer.Schema
	Search  search.Options
	Sources []string
}

// Category is a selectable category with its display label.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Categories lists the dataset categories in rule order, ending with the
// "other" bucket.
func (d Dataset) Categories() []Category {
	values := d.Schema.Categories.Values()
	out := make([]Category, 0, len(values)+1)
	for _, value := range values {
		if value == listing.CategoryOther {
			continue
		}
		out = append(out, Category{ID: value, Label: d.Schema.Label(value)})
	}
	return append(out, Category{ID: listing.CategoryOther, Label: d.Schema.Label(listing.CategoryOther)})
}

var builders = map[listing.Kind]func() Dataset{
	listing.KindFood:       food,
	listing.KindJobs:       jobs,
	listing.KindRealEstate: realEstate,
	listing.KindVehicles:   vehicles,
	listing.KindMarket:     market,
	listing.KindServices:   services,
}

// All returns every dataset in listing.Kinds order.
func All() []Dataset {
	out := make([]Dataset, 0, len(builders))
	for _, kind := range listing.Kinds() {
		out = append(out, builders[kind]())
	}
	return out
}

// ByKind returns the dataset table for kind.
func ByKind(kind listing.Kind) (Dataset, bool) {
	build, ok := builders[kind]
	if !ok {
		return Dataset{}, false
	}
	return build(), true
}

func publishedCSV(gid int) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/e/%s/pub?gid=%d&single=true&output=csv", publishedSheet, gid)
}

func field(name, def string, synonyms ...string) importer.FieldSpec {
	return importer.FieldSpec{Name: name, Synonyms: synonyms, Default: def}
}

func imageField() importer.FieldSpec {
	return field(importer.FieldImage, DefaultImage, "hinh_anh", "hình ảnh", "ảnh", "anh", "image_url", "link ảnh", "photo")
}

func phoneField() importer.FieldSpec {
	return field(importer.FieldPhone, defaultPending, "sdt", "số điện thoại", "so_dien_thoai", "điện thoại", "dien_thoai", "liên hệ", "zalo")
}

func flagFields() []importer.FieldSpec {
	return []importer.FieldSpec{
		field(importer.FieldVerified, flagUnset, "xac_minh", "đã xác minh", "xác thực", "uy tín"),
		field(importer.FieldFeatured, flagUnset, "noi_bat", "nổi bật", "tin hot", "hot", "ưu tiên"),
	}
}

func withFlags(fields ...importer.FieldSpec) []importer.FieldSpec {
	return append(fields, flagFields()...)
}
