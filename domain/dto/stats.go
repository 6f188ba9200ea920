package dto

// StatsResponse เป็นผลรวมสถิติของ user หนึ่งคน คิดจาก todos ที่เป็นเจ้าของเท่านั้น
type StatsResponse struct {
	Overview      StatsOverview   `json:"overview"`
	Categories    []CategoryStat  `json:"categories"`
	DailyActivity []DailyActivity `json:"daily_activity"`
	Productivity  Productivity    `json:"productivity"`
}

type StatsOverview struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	Active         int64   `json:"active"`
	Overdue        int64   `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

// CategoryStat: Name/Color เป็น nil สำหรับ bucket "ไม่มี category"
type CategoryStat struct {
	Name      *string `json:"category__name"`
	Color     *string `json:"category__color"`
	Total     int64   `json:"total"`
	Completed int64   `json:"completed"`
}

type DailyActivity struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Day       string `json:"day"`  // ชื่อวันแบบย่อ เช่น Mon
	Created   int64  `json:"created"`
	Completed int64  `json:"completed"`
}

type Productivity struct {
	// AvgCompletionTime เป็นจำนวนวันเต็ม, nil ถ้ายังไม่มี todo ที่เสร็จ
	AvgCompletionTime *int64  `json:"avg_completion_time"`
	MostProductiveDay *string `json:"most_productive_day"`
}
