package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

func market() Dataset {
	return Dataset{
		Kind:  listing.KindMarket,
		Label: "Chợ đồ cũ & mới",
		Schema: importer.Schema{
			Kind: listing.KindMarket,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "ten_san_pham", "tên sản phẩm", "tên", "sản phẩm", "món đồ"),
				field(importer.FieldPrice, defaultPrice, "gia_tien", "giá tiền", "giá", "gia"),
				field(importer.FieldLocation, defaultPending, "dia_chi", "địa chỉ", "khu vực"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "danh_muc", "danh mục", "loại", "loai"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang", "tình trạng", "trạng thái"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "chi tiết"),
				field(importer.FieldSeller, defaultSeller, "nguoi_ban", "người bán", "shop"),
				importer.FieldSpec{
					Name:      "condition",
					Synonyms:  []string{"do_moi", "độ mới", "mới/cũ", "chất lượng"},
					Default:   "Không rõ",
					Normalize: normalizeCondition,
				},
			),
			Categories: classify.New(
				classify.Rule{Value: "electronics", Keywords: []string{"điện thoại", "laptop", "máy tính", "tivi", "điện tử", "loa kéo", "loa bluetooth", "tai nghe"}},
				classify.Rule{Value: "appliances", Keywords: []string{"tủ lạnh", "máy giặt", "điều hòa", "gia dụng", "nồi cơm", "quạt"}},
				classify.Rule{Value: "furniture", Keywords: []string{"bàn ghế", "tủ gỗ", "giường", "nội thất", "sofa"}},
				classify.Rule{Value: "fashion", Keywords: []string{"quần áo", "thời trang", "giày", "túi xách", "đồng hồ"}},
				classify.Rule{Value: "baby", Keywords: []string{"mẹ và bé", "đồ chơi", "sơ sinh", "xe đẩy"}},
				classify.Rule{Value: "pets", Keywords: []string{"thú cưng", "chó cảnh", "mèo cảnh", "chim cảnh"}},
			),
			CategoryLabels: map[string]string{
				"electronics":         "Điện tử",
				"appliances":          "Gia dụng",
				"furniture":           "Nội thất",
				"fashion":             "Thời trang",
				"baby":                "Mẹ & bé",
				"pets":                "Thú cưng",
				listing.CategoryOther: "Khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusSold), Keywords: []string{"đã bán", "hết hàng", "sold", "ngưng bán", "đã cọc"}},
			),
			Price: importer.PriceFormat{Suffix: "đ"},
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldSeller, search.FieldCategory},
			Brackets: []search.Bracket{
				{ID: "under-100k", Label: "Dưới 100.000đ", Max: 100_000},
				{ID: "100k-500k", Label: "100.000đ - 500.000đ", Min: 100_000, Max: 500_000},
				{ID: "500k-2m", Label: "500.000đ - 2 triệu", Min: 500_000, Max: 2_000_000},
				{ID: "2m-10m", Label: "2 - 10 triệu", Min: 2_000_000, Max: 10_000_000},
				{ID: "over-10m", Label: "Trên 10 triệu", Min: 10_000_000},
			},
		},
		Sources: []string{publishedCSV(4)},
	}
}
