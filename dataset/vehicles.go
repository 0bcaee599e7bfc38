package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

// A bare "cũ" is checked last: its folded form "cu" also occurs in "cứng" and
// "cửa hàng".
var conditionRules = classify.New(
	classify.Rule{Value: usedCondition, Keywords: []string{"đã qua sử dụng", "like new", "second hand", "99%", "98%", "95%", "used"}},
	classify.Rule{Value: "Mới", Keywords: []string{"mới", "new", "fullbox", "100%", "chưa sử dụng"}},
	classify.Rule{Value: usedCondition, Keywords: []string{"cũ"}},
)

const usedCondition = "Đã qua sử dụng"

func normalizeCondition(raw string) string {
	return conditionRules.ClassifyOr(raw, "")
}

func vehicles() Dataset {
	return Dataset{
		Kind:  listing.KindVehicles,
		Label: "Xe cộ",
		Schema: importer.Schema{
			Kind: listing.KindVehicles,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "ten_xe", "tên xe", "tiêu đề", "dòng xe", "mẫu xe"),
				field(importer.FieldPrice, defaultPrice, "gia", "giá", "giá bán", "gia_ban"),
				field(importer.FieldLocation, defaultPending, "dia_chi", "địa chỉ", "khu vực"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "loai_xe", "loại xe", "loại", "loai"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang_ban", "trạng thái", "trang_thai"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "chi tiết"),
				field(importer.FieldSeller, defaultSeller, "nguoi_ban", "người bán", "chủ xe", "cửa hàng"),
				field("brand", defaultPending, "hang_xe", "hãng", "hãng xe", "thương hiệu"),
				field("year", defaultPending, "nam_sx", "năm sản xuất", "đời", "năm"),
				field("mileage", defaultPending, "so_km", "số km", "odo", "đã đi"),
				importer.FieldSpec{
					Name:      "condition",
					Synonyms:  []string{"tinh_trang", "tình trạng", "độ mới"},
					Default:   "Không rõ",
					Normalize: normalizeCondition,
				},
			),
			Categories: classify.New(
				classify.Rule{Value: "parts", Keywords: []string{"phụ tùng", "đồ chơi xe", "phụ kiện", "lốp", "vỏ xe"}},
				classify.Rule{Value: "truck", Keywords: []string{"xe tải", "bán tải", "xe ben", "máy cày", "xe nông nghiệp"}},
				classify.Rule{Value: "bicycle", Keywords: []string{"xe đạp"}},
				classify.Rule{Value: "motorbike", Keywords: []string{"xe máy", "xe số", "xe ga", "tay côn", "honda", "yamaha", "suzuki", "vespa", "wave", "sirius"}},
				classify.Rule{Value: "car", Keywords: []string{"ô tô", "oto", "xe hơi", "sedan", "suv", "toyota", "kia", "mazda", "hyundai", "ford"}},
			),
			CategoryLabels: map[string]string{
				"parts":               "Phụ tùng",
				"truck":               "Xe tải & nông cụ",
				"bicycle":             "Xe đạp",
				"motorbike":           "Xe máy",
				"car":                 "Ô tô",
				listing.CategoryOther: "Khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusSold), Keywords: []string{"đã bán", "đã cọc", "sold"}},
			),
			Price: importer.PriceFormat{Suffix: "đ", Abbreviate: true},
			Value: importer.ParseAmount,
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldCategory, search.FieldLocation, "brand"},
			Brackets: []search.Bracket{
				{ID: "under-10m", Label: "Dưới 10 triệu", Max: 10_000_000},
				{ID: "10m-50m", Label: "10 - 50 triệu", Min: 10_000_000, Max: 50_000_000},
				{ID: "50m-300m", Label: "50 - 300 triệu", Min: 50_000_000, Max: 300_000_000},
				{ID: "300m-1b", Label: "300 triệu - 1 tỷ", Min: 300_000_000, Max: 1_000_000_000},
				{ID: "over-1b", Label: "Trên 1 tỷ", Min: 1_000_000_000},
			},
		},
		Sources: []string{publishedCSV(3)},
	}
}
