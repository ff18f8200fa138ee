package game

const (
	rowScore  = 100
	bonusBase = rowScore / 2
)

// ScoreForRows returns the points for clearing rows at once. Multi-row clears
// add a bonus that starts at half a row and doubles for every row.
func ScoreForRows(rows int) int {
	if rows <= 0 {
		return 0
	}
	score := rows * rowScore
	if rows > 1 {
		bonus := bonusBase
		for range rows {
			score += bonus
			bonus *= 2
		}
	}
	return score
}
