package models

// DriveResultKind represents how a single possession ended
type DriveResultKind string

const (
	// DriveResultTouchdown indicates the offense reached the end zone
	DriveResultTouchdown DriveResultKind = "touchdown"

	// DriveResultFieldGoal indicates the offense made a field goal
	DriveResultFieldGoal DriveResultKind = "field_goal"

	// DriveResultNoScore covers punts, turnovers and turnovers on downs
	DriveResultNoScore DriveResultKind = "no_score"

	// DriveResultSafety indicates the defense scored a safety
	DriveResultSafety DriveResultKind = "safety"
)

const (
	// TouchdownPoints is the value of a touchdown before the try
	TouchdownPoints = 6

	// FieldGoalPoints is the value of a made field goal
	FieldGoalPoints = 3

	// SafetyPoints is the value of a safety, credited to the defense
	SafetyPoints = 2
)

// DriveResult is the immutable outcome of one possession
type DriveResult struct {
	kind          DriveResultKind
	points        int
	defensePoints int
}

// Touchdown builds a touchdown result. try is the number of points the try added (0, 1 or 2).
func Touchdown(try int) DriveResult {
	return DriveResult{kind: DriveResultTouchdown, points: TouchdownPoints + try}
}

// FieldGoal builds a made field goal result
func FieldGoal() DriveResult {
	return DriveResult{kind: DriveResultFieldGoal, points: FieldGoalPoints}
}

// NoScore builds a scoreless possession
func NoScore() DriveResult {
	return DriveResult{kind: DriveResultNoScore}
}

// Safety builds a possession that ended with the defense scoring a safety
func Safety() DriveResult {
	return DriveResult{kind: DriveResultSafety, defensePoints: SafetyPoints}
}

// Kind returns how the possession ended
func (r DriveResult) Kind() DriveResultKind {
	return r.kind
}

// Points returns the points credited to the offense
func (r DriveResult) Points() int {
	return r.points
}

// DefensePoints returns the points credited to the defense
func (r DriveResult) DefensePoints() int {
	return r.defensePoints
}

// Scored reports whether anyone put points on the board during the possession
func (r DriveResult) Scored() bool {
	return r.points > 0 || r.defensePoints > 0
}

// String implements fmt.Stringer
func (r DriveResult) String() string {
	if r.kind == "" {
		return string(DriveResultNoScore)
	}
	return string(r.kind)
}
