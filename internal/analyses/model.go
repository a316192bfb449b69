package analyses

import "time"

// Property types accepted on an analysis.
const (
	PropertyHome    = "home"
	PropertyOffice  = "office"
	PropertyShop    = "shop"
	PropertyFactory = "factory"
	PropertyPlot    = "plot"
)

// Processing status values. This layer stores them without enforcing
// transitions; the processing pipeline owns the lifecycle.
const (
	StatusUploading  = "uploading"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusFailed     = "failed"
)

// Zone classification buckets derived from score by the scoring
// pipeline. Stored as-is.
const (
	ZoneOptimal   = "optimal"
	ZoneAttention = "attention"
	ZoneCritical  = "critical"
)

// ZoneCount is the fixed number of directional sectors per property.
const ZoneCount = 16

// Compass directions used by zones.
const (
	DirN  = "N"
	DirNE = "NE"
	DirE  = "E"
	DirSE = "SE"
	DirS  = "S"
	DirSW = "SW"
	DirW  = "W"
	DirNW = "NW"
)

// Analysis represents one submitted property video and its derived report.
type Analysis struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyType   string   `json:"propertyType"`
	SelectedGoals  []string `json:"selectedGoals,omitempty"`
	VideoURL       string   `json:"videoUrl"`
	CompassHeading float64  `json:"compassHeading"`

	Status string `json:"status"`

	// Derived outputs, each independently nullable until produced.
	FloorPlan      *FloorPlan       `json:"floorPlan,omitempty"`
	Zones          []Zone           `json:"zones,omitempty"`
	Summary        *AnalysisSummary `json:"summary,omitempty"`
	DetailedReport *DetailedReport  `json:"detailedReport,omitempty"`
}

// FloorPlan is the extracted vector plan of the property.
type FloorPlan struct {
	SVG    string          `json:"svg"`
	Bounds FloorPlanBounds `json:"bounds"`
	Scale  float64         `json:"scale"` // meters per pixel
}

// FloorPlanBounds is the plan's pixel extent.
type FloorPlanBounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Zone is one of the 16 fixed directional sectors of a property.
type Zone struct {
	ID                int      `json:"id"` // 1-16
	Direction         string   `json:"direction"`
	DirectionSanskrit string   `json:"directionSanskrit"`
	Score             float64  `json:"score"` // 0-100
	Status            string   `json:"status"`
	Rooms             []string `json:"rooms"`
	BriefInsight      string   `json:"briefInsight"`
	DetailedAnalysis  string   `json:"detailedAnalysis,omitempty"`
}

// AnalysisSummary carries the top insights and overall score.
type AnalysisSummary struct {
	TopInsights  []Insight `json:"topInsights"`
	OverallScore float64   `json:"overallScore"` // 0-100
}

// Insight is a single highlighted finding.
type Insight struct {
	Title       string `json:"title"`
	Severity    string `json:"severity"` // good | warning | critical
	Description string `json:"description"`
	Zone        int    `json:"zone"`
}

// DetailedReport is the full generated report.
type DetailedReport struct {
	RoomAnalysis     []RoomAnalysis   `json:"roomAnalysis"`
	Remedies         []Remedy         `json:"remedies"`
	GeometricMetrics GeometricMetrics `json:"geometricMetrics"`
	PhysicsMetrics   PhysicsMetrics   `json:"physicsMetrics"`
}

// RoomAnalysis scores a single room.
type RoomAnalysis struct {
	RoomName        string   `json:"roomName"`
	Zone            int      `json:"zone"`
	Score           float64  `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Remedy is a recommended correction for a found issue.
type Remedy struct {
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"` // high | medium | low
	Cost           string `json:"cost"`     // free | low | medium | high
}

// GeometricMetrics are shape-derived measurements.
type GeometricMetrics struct {
	SymmetryScore         float64 `json:"symmetryScore"`
	ProportionRatio       float64 `json:"proportionRatio"`
	GoldenRatioCompliance float64 `json:"goldenRatioCompliance"`
}

// PhysicsMetrics are light/airflow measurements.
type PhysicsMetrics struct {
	SolarOrientation    string  `json:"solarOrientation"`
	NaturalLightScore   float64 `json:"naturalLightScore"`
	AirflowPatternScore float64 `json:"airflowPatternScore"`
}

// AnalysisInsert is the caller-supplied portion of a new analysis.
// Identity and timestamps are assigned at creation, never by the caller.
type AnalysisInsert struct {
	UserID         string           `json:"userId,omitempty"`
	PropertyType   string           `json:"propertyType"`
	SelectedGoals  []string         `json:"selectedGoals,omitempty"`
	VideoURL       string           `json:"videoUrl"`
	CompassHeading float64          `json:"compassHeading"`
	Status         string           `json:"status,omitempty"`
	FloorPlan      *FloorPlan       `json:"floorPlan,omitempty"`
	Zones          []Zone           `json:"zones,omitempty"`
	Summary        *AnalysisSummary `json:"summary,omitempty"`
	DetailedReport *DetailedReport  `json:"detailedReport,omitempty"`
}

// AnalysisUpdate is a partial update: nil fields are left untouched.
type AnalysisUpdate struct {
	UserID         *string          `json:"userId,omitempty"`
	PropertyType   *string          `json:"propertyType,omitempty"`
	SelectedGoals  []string         `json:"selectedGoals,omitempty"`
	VideoURL       *string          `json:"videoUrl,omitempty"`
	CompassHeading *float64         `json:"compassHeading,omitempty"`
	Status         *string          `json:"status,omitempty"`
	FloorPlan      *FloorPlan       `json:"floorPlan,omitempty"`
	Zones          []Zone           `json:"zones,omitempty"`
	Summary        *AnalysisSummary `json:"summary,omitempty"`
	DetailedReport *DetailedReport  `json:"detailedReport,omitempty"`
}

// record flattens the supplied fields into a camelCase record for the
// converter/codec pipeline. Absent fields stay absent.
func (u AnalysisUpdate) record() map[string]any {
	rec := map[string]any{}
	if u.UserID != nil {
		rec["userId"] = *u.UserID
	}
	if u.PropertyType != nil {
		rec["propertyType"] = *u.PropertyType
	}
	if u.SelectedGoals != nil {
		rec["selectedGoals"] = u.SelectedGoals
	}
	if u.VideoURL != nil {
		rec["videoUrl"] = *u.VideoURL
	}
	if u.CompassHeading != nil {
		rec["compassHeading"] = *u.CompassHeading
	}
	if u.Status != nil {
		rec["status"] = *u.Status
	}
	if u.FloorPlan != nil {
		rec["floorPlan"] = u.FloorPlan
	}
	if u.Zones != nil {
		rec["zones"] = u.Zones
	}
	if u.Summary != nil {
		rec["summary"] = u.Summary
	}
	if u.DetailedReport != nil {
		rec["detailedReport"] = u.DetailedReport
	}
	return rec
}

// apply copies the supplied fields onto a, the in-memory analogue of
// the record-based SQL update.
func (u AnalysisUpdate) apply(a *Analysis) {
	if u.UserID != nil {
		a.UserID = *u.UserID
	}
	if u.PropertyType != nil {
		a.PropertyType = *u.PropertyType
	}
	if u.SelectedGoals != nil {
		a.SelectedGoals = u.SelectedGoals
	}
	if u.VideoURL != nil {
		a.VideoURL = *u.VideoURL
	}
	if u.CompassHeading != nil {
		a.CompassHeading = *u.CompassHeading
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.FloorPlan != nil {
		a.FloorPlan = u.FloorPlan
	}
	if u.Zones != nil {
		a.Zones = u.Zones
	}
	if u.Summary != nil {
		a.Summary = u.Summary
	}
	if u.DetailedReport != nil {
		a.DetailedReport = u.DetailedReport
	}
}

// record flattens a full analysis into a camelCase record for insert.
func (a Analysis) record() map[string]any {
	rec := map[string]any{
		"id":             a.ID,
		"createdAt":      a.CreatedAt,
		"updatedAt":      a.UpdatedAt,
		"propertyType":   a.PropertyType,
		"videoUrl":       a.VideoURL,
		"compassHeading": a.CompassHeading,
		"status":         a.Status,
	}
	if a.UserID != "" {
		rec["userId"] = a.UserID
	}
	if a.SelectedGoals != nil {
		rec["selectedGoals"] = a.SelectedGoals
	}
	if a.FloorPlan != nil {
		rec["floorPlan"] = a.FloorPlan
	}
	if a.Zones != nil {
		rec["zones"] = a.Zones
	}
	if a.Summary != nil {
		rec["summary"] = a.Summary
	}
	if a.DetailedReport != nil {
		rec["detailedReport"] = a.DetailedReport
	}
	return rec
}
