package employee

// Bulk rule constants. Đây là business constants cho sẵn, giữ nguyên literal.
const (
	// SumThreshold: tổng A/B/C phải >= giá trị này thì mới trả về
	SumThreshold int64 = 11171
)

// PrefixIncrement: record có name bắt đầu bằng Prefix (1 ký tự, phân biệt hoa thường)
// được cộng Amount vào value.
type PrefixIncrement struct {
	Prefix string
	Amount int64
}

// IncrementRule phân loại mọi record vào đúng một bucket:
// case đầu tiên match theo thứ tự, không match thì cộng Default.
type IncrementRule struct {
	Cases   []PrefixIncrement
	Default int64
}

// ValueIncrementRule là partition dùng cho mass update: E / G / còn lại.
var ValueIncrementRule = IncrementRule{
	Cases: []PrefixIncrement{
		{Prefix: "E", Amount: 1},
		{Prefix: "G", Amount: 10},
	},
	Default: 100,
}

// ReportPrefixes là filter độc lập cho aggregate read.
// Không gộp với ValueIncrementRule: "A..." thuộc bucket "còn lại" khi update
// nhưng vẫn được cộng vào tổng.
var ReportPrefixes = []string{"A", "B", "C"}

// Increment trả về lượng cộng thêm cho name theo rule
func (r IncrementRule) Increment(name string) int64 {
	for _, c := range r.Cases {
		if c.Prefix != "" && len(name) >= len(c.Prefix) && name[:len(c.Prefix)] == c.Prefix {
			return c.Amount
		}
	}
	return r.Default
}

// CaseArgs trả về args theo thứ tự (prefix, amount)..., default
// để bind vào câu UPDATE ... CASE.
func (r IncrementRule) CaseArgs() []any {
	args := make([]any, 0, len(r.Cases)*2+1)
	for _, c := range r.Cases {
		args = append(args, c.Prefix, c.Amount)
	}
	return append(args, r.Default)
}

// MeetsThreshold: tổng của tập rỗng là 0, luôn dưới ngưỡng
func MeetsThreshold(sum int64) bool {
	return sum >= SumThreshold
}
