package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

func food() Dataset {
	return Dataset{
		Kind:  listing.KindFood,
		Label: "Thực phẩm quê",
		Schema: importer.Schema{
			Kind: listing.KindFood,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "ten_mon", "tên món", "tên sản phẩm", "ten_san_pham", "sản phẩm", "mặt hàng"),
				field(importer.FieldPrice, defaultPrice, "gia", "giá", "giá bán", "gia_tien", "đơn giá"),
				field(importer.FieldLocation, defaultPending, "dia_chi", "địa chỉ", "khu vực", "xã", "ấp"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "loai", "loại", "danh mục", "nhóm hàng"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang", "tình trạng", "trạng thái"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "ghi chú", "chi tiết"),
				field(importer.FieldSeller, defaultSeller, "nguoi_ban", "người bán", "nhà vườn", "cơ sở", "tên chủ"),
				field("unit", "kg", "don_vi", "đơn vị", "đvt"),
			),
			Categories: classify.New(
				classify.Rule{Value: "garden", Keywords: []string{"cây giống", "hoa kiểng", "cây cảnh", "hạt giống", "cây ăn trái"}},
				classify.Rule{Value: "meat", Keywords: []string{"thịt", "gà ta", "gà thả", "vịt", "heo", "bò tơ", "trứng"}},
				classify.Rule{Value: "seafood", Keywords: []string{"hải sản", "thủy sản", "tôm", "mực", "cua biển", "cá lóc", "cá rô", "cá tươi", "cá khô"}},
				classify.Rule{Value: "produce", Keywords: []string{"rau", "trái cây", "hoa quả", "nông sản", "khoai", "lúa", "gạo"}},
				classify.Rule{Value: "specialty", Keywords: []string{"đặc sản", "mắm", "khô", "lạp xưởng", "nem"}},
				classify.Rule{Value: "sweets", Keywords: []string{"bánh", "chè", "kẹo", "mứt"}},
				classify.Rule{Value: "drinks", Keywords: []string{"cà phê", "trà sữa", "trà xanh", "rượu", "nước ép", "sinh tố", "mật ong"}},
			),
			CategoryLabels: map[string]string{
				"garden":              "Cây giống & vườn",
				"meat":                "Thịt & trứng",
				"seafood":             "Thủy hải sản",
				"produce":             "Rau củ & nông sản",
				"specialty":           "Đặc sản",
				"sweets":              "Bánh & mứt",
				"drinks":              "Đồ uống",
				listing.CategoryOther: "Khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusSold), Keywords: []string{"đã bán", "hết hàng", "hết", "sold", "ngưng bán", "tạm hết"}},
			),
			Price: importer.PriceFormat{Suffix: "đ"},
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldSeller, search.FieldCategory},
			Brackets: []search.Bracket{
				{ID: "under-50k", Label: "Dưới 50.000đ", Max: 50_000},
				{ID: "50k-200k", Label: "50.000đ - 200.000đ", Min: 50_000, Max: 200_000},
				{ID: "200k-500k", Label: "200.000đ - 500.000đ", Min: 200_000, Max: 500_000},
				{ID: "over-500k", Label: "Trên 500.000đ", Min: 500_000},
			},
		},
		Sources: []string{publishedCSV(0)},
	}
}
