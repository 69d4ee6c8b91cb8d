package activity

type FeatureType string

const (
	FeatureProcess   FeatureType = "PROCESS"
	FeatureBreath    FeatureType = "BREATH"
	FeatureChecklist FeatureType = "CHECKLIST"
)

func (f FeatureType) Valid() bool {
	switch f {
	case FeatureProcess, FeatureBreath, FeatureChecklist:
		return true
	}
	return false
}

type LogRequest struct {
	LessonID    string      `json:"lessonId"`
	LessonName  string      `json:"lessonName"`
	FeatureType FeatureType `json:"featureType"`
	Date        string      `json:"date"`
}

type LogResponse struct {
	Logged bool   `json:"logged"`
	Date   string `json:"date"`
}

type LessonCount struct {
	LessonID   string `json:"lessonId"`
	LessonName string `json:"lessonName"`
	Count      int    `json:"count"`
}

// MonthlyStats groups activity counts per feature for one month. The JSON
// keys are the feature names the mobile client renders section headers from.
type MonthlyStats struct {
	Process   []LessonCount `json:"PROCESS"`
	Breath    []LessonCount `json:"BREATH"`
	Checklist []LessonCount `json:"CHECKLIST"`
	MaxCount  int           `json:"maxCount"`
}
