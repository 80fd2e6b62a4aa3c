package engine

// linePoints is the base award for clearing 1..4 rows in one tick.
var linePoints = [...]int{0, 40, 100, 300, 1200}

// ScoreFor returns the points for clearing rows in a single tick at level.
// Four or more rows score as four.
func ScoreFor(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	if rows >= len(linePoints) {
		rows = len(linePoints) - 1
	}
	return linePoints[rows] * level
}

// award applies scoring and leveling for rows cleared in one tick.
// Caller holds e.mu.
func (e *Engine) award(rows int) {
	if rows <= 0 {
		return
	}

	points := ScoreFor(rows, e.level)
	e.score += points
	e.lines += rows
	e.totalLines += rows
	e.logger.Debug("rows cleared", "rows", rows, "points", points, "score", e.score)

	for e.lines >= e.cfg.LinesPerLevel {
		e.lines -= e.cfg.LinesPerLevel
		e.level++
		e.interval = max(e.interval-e.cfg.SpeedStep, e.cfg.MinInterval)
		e.logger.Info("level up", "level", e.level, "interval", e.interval)
	}
}
