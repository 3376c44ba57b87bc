package model

// Option is a code with its display label, in presentation order.
type Option struct {
	Value string
	Label string
}

var categories = []Option{
	{Value: string(CategoryCheckup), Label: "定期検診"},
	{Value: string(CategoryTreatment), Label: "治療"},
	{Value: string(CategoryConsultation), Label: "相談"},
	{Value: string(CategoryEmergency), Label: "急患"},
	{Value: string(CategoryOther), Label: "その他"},
}

var statuses = []Option{
	{Value: string(StatusConfirmed), Label: "予約確定"},
	{Value: string(StatusCheckedIn), Label: "来院済"},
	{Value: string(StatusInProgress), Label: "診察中"},
	{Value: string(StatusCompleted), Label: "完了"},
	{Value: string(StatusCancelled), Label: "キャンセル"},
	{Value: string(StatusNoShow), Label: "無断キャンセル"},
}

var statusBadgeClasses = map[string]string{
	string(StatusConfirmed):  "bg-blue-100 text-blue-800",
	string(StatusCheckedIn):  "bg-green-100 text-green-800",
	string(StatusInProgress): "bg-yellow-100 text-yellow-800",
	string(StatusCompleted):  "bg-gray-100 text-gray-800",
	string(StatusCancelled):  "bg-red-100 text-red-800",
	string(StatusNoShow):     "bg-red-100 text-red-800",
}

const defaultBadgeClass = "bg-gray-100"

func CategoryOptions() []Option {
	return append([]Option(nil), categories...)
}

// CategoryLabel maps a category code to its label; unknown codes are returned as-is.
func CategoryLabel(code string) string {
	if label, ok := lookup(categories, code); ok {
		return label
	}
	return code
}

// StatusLabel maps a status code to its label; unknown codes are returned as-is.
func StatusLabel(code string) string {
	if label, ok := lookup(statuses, code); ok {
		return label
	}
	return code
}

func StatusBadgeClass(code string) string {
	if class, ok := statusBadgeClasses[code]; ok {
		return class
	}
	return defaultBadgeClass
}

func lookup(opts []Option, code string) (string, bool) {
	for _, o := range opts {
		if o.Value == code {
			return o.Label, true
		}
	}
	return "", false
}
