package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

func services() Dataset {
	return Dataset{
		Kind:  listing.KindServices,
		Label: "Dịch vụ",
		Schema: importer.Schema{
			Kind: listing.KindServices,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "dich_vu", "dịch vụ", "tên dịch vụ", "tiêu đề"),
				field(importer.FieldPrice, defaultPrice, "gia", "giá", "chi phí", "giá từ"),
				field(importer.FieldLocation, defaultPending, "khu_vuc", "khu vực", "phạm vi", "địa chỉ"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "loai", "loại", "lĩnh vực", "nhóm"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang", "tình trạng", "trạng thái"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "chi tiết"),
				field(importer.FieldSeller, defaultSeller, "nguoi_lam", "người làm", "thợ", "đơn vị", "cơ sở"),
				field("hours", defaultPending, "gio_lam", "giờ làm", "thời gian"),
			),
			Categories: classify.New(
				classify.Rule{Value: "repair", Keywords: []string{"sửa chữa", "sửa", "điện lạnh", "điện nước", "bảo trì"}},
				classify.Rule{Value: "cleaning", Keywords: []string{"dọn dẹp", "vệ sinh", "giặt", "diệt côn trùng"}},
				classify.Rule{Value: "transport", Keywords: []string{"chuyển nhà", "vận chuyển", "xe ôm", "giao hàng", "chở hàng"}},
				classify.Rule{Value: "tutoring", Keywords: []string{"gia sư", "dạy kèm", "luyện thi", "học"}},
				classify.Rule{Value: "beauty", Keywords: []string{"làm đẹp", "cắt tóc", "nail", "spa", "trang điểm"}},
				classify.Rule{Value: "construction", Keywords: []string{"xây dựng", "sơn nhà", "thợ hồ", "lát gạch"}},
				classify.Rule{Value: "events", Keywords: []string{"đám cưới", "tiệc", "nấu cỗ", "chụp ảnh"}},
			),
			CategoryLabels: map[string]string{
				"repair":              "Sửa chữa",
				"cleaning":            "Vệ sinh",
				"transport":           "Vận chuyển",
				"tutoring":            "Gia sư",
				"beauty":              "Làm đẹp",
				"construction":        "Xây dựng",
				"events":              "Tiệc & sự kiện",
				listing.CategoryOther: "Dịch vụ khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusResolved), Keywords: []string{"đã xong", "hoàn thành", "đã có người", "đã giải quyết"}},
				classify.Rule{Value: string(listing.StatusSold), Keywords: []string{"tạm nghỉ", "ngưng nhận", "hết lịch"}},
			),
			Price: importer.PriceFormat{Suffix: "đ"},
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldSeller, search.FieldCategory, search.FieldDescription},
			Brackets: []search.Bracket{
				{ID: "under-200k", Label: "Dưới 200.000đ", Max: 200_000},
				{ID: "200k-500k", Label: "200.000đ - 500.000đ", Min: 200_000, Max: 500_000},
				{ID: "500k-1m", Label: "500.000đ - 1 triệu", Min: 500_000, Max: 1_000_000},
				{ID: "over-1m", Label: "Trên 1 triệu", Min: 1_000_000},
			},
		},
		Sources: []string{publishedCSV(5)},
	}
}
