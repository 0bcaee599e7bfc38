package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

func realEstate() Dataset {
	return Dataset{
		Kind:  listing.KindRealEstate,
		Label: "Nhà đất",
		Schema: importer.Schema{
			Kind: listing.KindRealEstate,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "tieu_de", "tiêu đề", "tên", "bất động sản"),
				field(importer.FieldPrice, defaultPrice, "gia", "giá", "giá bán", "gia_ban", "giá thuê"),
				field(importer.FieldLocation, defaultPending, "dia_chi", "địa chỉ", "vị trí", "khu vực"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "loai_bds", "loại", "loại bđs", "loai", "hình thức"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang", "tình trạng", "trạng thái"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "chi tiết"),
				field(importer.FieldSeller, "Chính chủ", "chu_nha", "chủ nhà", "người đăng", "môi giới"),
				field("area", defaultPending, "dien_tich", "diện tích", "dt", "m2"),
				field("legal", defaultPending, "phap_ly", "pháp lý", "giấy tờ", "sổ"),
			),
			Categories: classify.New(
				classify.Rule{Value: "rental", Keywords: []string{"phòng trọ", "nhà trọ", "cho thuê", "thuê"}},
				classify.Rule{Value: "apartment", Keywords: []string{"căn hộ", "chung cư"}},
				classify.Rule{Value: "commercial", Keywords: []string{"mặt bằng", "kiot", "kinh doanh", "văn phòng"}},
				classify.Rule{Value: "farmland", Keywords: []string{"đất vườn", "đất ruộng", "đất nông nghiệp", "ao cá"}},
				classify.Rule{Value: "land", Keywords: []string{"đất nền", "đất thổ", "lô đất", "đất"}},
				classify.Rule{Value: "house", Keywords: []string{"nhà phố", "nhà cấp", "biệt thự", "nhà"}},
			),
			CategoryLabels: map[string]string{
				"rental":              "Cho thuê",
				"apartment":           "Căn hộ",
				"commercial":          "Mặt bằng",
				"farmland":            "Đất vườn & ruộng",
				"land":                "Đất nền",
				"house":               "Nhà ở",
				listing.CategoryOther: "Khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusSold), Keywords: []string{"đã bán", "đã cho thuê", "đã thuê", "đã cọc", "sold"}},
			),
			Price: importer.PriceFormat{Suffix: "đ", Abbreviate: true},
			Value: importer.ParseAmount,
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldLocation, search.FieldCategory},
			Brackets: []search.Bracket{
				{ID: "under-500m", Label: "Dưới 500 triệu", Max: 500_000_000},
				{ID: "500m-1b", Label: "500 triệu - 1 tỷ", Min: 500_000_000, Max: 1_000_000_000},
				{ID: "1b-3b", Label: "1 - 3 tỷ", Min: 1_000_000_000, Max: 3_000_000_000},
				{ID: "3b-5b", Label: "3 - 5 tỷ", Min: 3_000_000_000, Max: 5_000_000_000},
				{ID: "over-5b", Label: "Trên 5 tỷ", Min: 5_000_000_000},
			},
		},
		Sources: []string{publishedCSV(2)},
	}
}
