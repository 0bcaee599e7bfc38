package dataset

import (
	"choque/importer"
	"choque/internal/classify"
	"choque/listing"
	"choque/search"
)

var scheduleRules = classify.New(
	classify.Rule{Value: "Bán thời gian", Keywords: []string{"part time", "bán thời gian", "theo ca", "thời vụ"}},
	classify.Rule{Value: "Toàn thời gian", Keywords: []string{"full time", "toàn thời gian", "hành chính", "giờ hành chính"}},
)

func jobs() Dataset {
	salary := []string{"luong", "lương", "mức lương", "muc_luong", "salary", "thu nhập", "gia", "giá"}

	return Dataset{
		Kind:  listing.KindJobs,
		Label: "Việc làm",
		Schema: importer.Schema{
			Kind: listing.KindJobs,
			Fields: withFlags(
				field(importer.FieldTitle, defaultTitle, "vi_tri", "vị trí", "công việc", "cong_viec", "chức danh", "tiêu đề", "tuyển"),
				field(importer.FieldPrice, "Thỏa thuận", salary...),
				field(importer.FieldLocation, defaultPending, "dia_chi", "địa chỉ", "nơi làm việc", "địa điểm", "khu vực"),
				phoneField(),
				imageField(),
				field(importer.FieldCategory, listing.CategoryOther, "nganh_nghe", "ngành nghề", "ngành", "loai", "loại"),
				field(importer.FieldStatus, string(listing.StatusAvailable), "tinh_trang", "tình trạng", "trạng thái"),
				field(importer.FieldDescription, defaultDescription, "mo_ta", "mô tả", "yêu cầu", "mô tả công việc"),
				field(importer.FieldSeller, "Nhà tuyển dụng", "cong_ty", "công ty", "cửa hàng", "nhà tuyển dụng", "chủ"),
				importer.FieldSpec{
					Name:     "schedule",
					Synonyms: []string{"hinh_thuc", "hình thức", "ca làm", "thời gian làm việc"},
					Default:  "Toàn thời gian",
					Normalize: func(raw string) string {
						return scheduleRules.ClassifyOr(raw, "")
					},
				},
				field("quantity", "1", "so_luong", "số lượng", "cần tuyển"),
			),
			Categories: classify.New(
				classify.Rule{Value: "sales", Keywords: []string{"bán hàng", "sale", "tư vấn", "thu ngân"}},
				classify.Rule{Value: "hospitality", Keywords: []string{"phục vụ", "pha chế", "bếp", "nhà hàng", "quán ăn", "quán nước", "quán cà phê"}},
				classify.Rule{Value: "delivery", Keywords: []string{"tài xế", "giao hàng", "shipper", "lái xe"}},
				classify.Rule{Value: "labor", Keywords: []string{"công nhân", "lao động", "bốc vác", "thợ", "phụ hồ"}},
				classify.Rule{Value: "office", Keywords: []string{"kế toán", "văn phòng", "hành chính", "nhân sự"}},
				classify.Rule{Value: "teaching", Keywords: []string{"giáo viên", "gia sư", "dạy"}},
				classify.Rule{Value: "housework", Keywords: []string{"giúp việc", "tạp vụ", "trông trẻ", "chăm người già", "chăm bệnh"}},
			),
			CategoryLabels: map[string]string{
				"sales":               "Bán hàng",
				"hospitality":         "Nhà hàng & quán",
				"delivery":            "Tài xế & giao hàng",
				"labor":               "Lao động phổ thông",
				"office":              "Văn phòng",
				"teaching":            "Giáo dục",
				"housework":           "Giúp việc",
				listing.CategoryOther: "Ngành khác",
			},
			Statuses: classify.New(
				classify.Rule{Value: string(listing.StatusResolved), Keywords: []string{"đã tuyển", "đủ người", "đã có người", "hết hạn", "đã đóng", "closed"}},
			),
			Price: importer.PriceFormat{Abbreviate: true, Unit: "/tháng", KeepText: true},
			Value: importer.ParseAmount,
		},
		Search: search.Options{
			Fields: []string{search.FieldTitle, search.FieldSeller, search.FieldCategory, search.FieldLocation},
			Brackets: []search.Bracket{
				{ID: "under-5m", Label: "Dưới 5 triệu", Max: 5_000_000},
				{ID: "5m-10m", Label: "5 - 10 triệu", Min: 5_000_000, Max: 10_000_000},
				{ID: "10m-20m", Label: "10 - 20 triệu", Min: 10_000_000, Max: 20_000_000},
				{ID: "over-20m", Label: "Trên 20 triệu", Min: 20_000_000},
			},
		},
		Sources: []string{publishedCSV(1)},
	}
}
